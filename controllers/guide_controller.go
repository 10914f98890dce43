package controllers

import (
	"ArGuide/models"
	"ArGuide/services"
	"ArGuide/utils"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type GuideController struct {
	GuideService *services.GuideService
}

func NewGuideController(guideService *services.GuideService) *GuideController {
	return &GuideController{
		GuideService: guideService,
	}
}

// Inference handles one photo-to-guide request: multipart image plus
// location, optional custom instruction and visitor profile fields.
func (h *GuideController) Inference(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "image file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "failed to open image file")
		return
	}
	defer file.Close()

	image, err := io.ReadAll(file)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "failed to read image file")
		return
	}

	latitude, err := strconv.ParseFloat(c.PostForm("latitude"), 64)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid latitude")
		return
	}

	longitude, err := strconv.ParseFloat(c.PostForm("longitude"), 64)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid longitude")
		return
	}

	profile, err := bindProfile(c)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	params, err := bindGenerationParams(c)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	req := models.InferenceRequest{
		Image:      image,
		ImageName:  fileHeader.Filename,
		Address:    c.PostForm("address"),
		Location:   models.GeoLocation{Latitude: latitude, Longitude: longitude},
		CustomText: c.PostForm("text"),
		Profile:    profile,
		Params:     params,
	}

	result := h.GuideService.GenerateGuide(c.Request.Context(), req)
	if !result.Success {
		c.JSON(http.StatusBadGateway, result)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Guide generated successfully", result)
}

func bindProfile(c *gin.Context) (models.UserProfile, error) {
	var profile models.UserProfile

	if v := c.PostForm("user_age_group"); v != "" {
		group, err := models.ParseAgeGroup(v)
		if err != nil {
			return profile, err
		}
		profile.AgeGroup = group
	}
	if v := c.PostForm("user_budget_level"); v != "" {
		level, err := models.ParseBudgetLevel(v)
		if err != nil {
			return profile, err
		}
		profile.BudgetLevel = level
	}
	if v := c.PostForm("user_activity_level"); v != "" {
		level, err := models.ParseActivityLevel(v)
		if err != nil {
			return profile, err
		}
		profile.ActivityLevel = level
	}
	for _, v := range c.PostFormArray("user_interests") {
		interest, err := models.ParseInterest(v)
		if err != nil {
			return profile, err
		}
		profile.Interests = append(profile.Interests, interest)
	}
	if v := c.PostForm("user_language"); v != "" {
		language, err := models.ParseLanguage(v)
		if err != nil {
			return profile, err
		}
		profile.Language = language
	}

	return profile, nil
}

func bindGenerationParams(c *gin.Context) (models.GenerationParams, error) {
	params := models.DefaultGenerationParams()

	if v := c.PostForm("temperature"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return params, err
		}
		params.Temperature = f
	}
	if v := c.PostForm("top_p"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return params, err
		}
		params.TopP = f
	}
	if v := c.PostForm("max_new_tokens"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return params, err
		}
		params.MaxNewTokens = n
	}
	if v := c.PostForm("repetition_penalty"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return params, err
		}
		params.RepetitionPenalty = f
	}

	return params, nil
}
