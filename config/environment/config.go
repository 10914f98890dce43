package environment

import (
	"os"
	"strconv"
)

// DefaultRAGAPIURL is the Sakura AI Engine document chat endpoint.
const DefaultRAGAPIURL = "https://api.ai.sakura.ad.jp/v1/documents/chat/"

func GetVLMBaseURL() string {
	return os.Getenv("VLM_API_URL")
}

func GetRAGAPIURL() string {
	if url := os.Getenv("RAG_API_URL"); url != "" {
		return url
	}
	return DefaultRAGAPIURL
}

func GetRAGAPIToken() string {
	return os.Getenv("SAKURA_OPENAI_API_TOKEN")
}

func GetSpotDBPath() string {
	return os.Getenv("SPOT_DB_PATH")
}

// GetLocationTopK returns the default nearest-spot count (LOCATION_TOP_K,
// default 5).
func GetLocationTopK() int {
	if v := os.Getenv("LOCATION_TOP_K"); v != "" {
		if k, err := strconv.Atoi(v); err == nil && k > 0 {
			return k
		}
	}
	return 5
}

func GetPort() string {
	if port := os.Getenv("PORT"); port != "" {
		return port
	}
	return "8080"
}

func GetFirebaseKey() string {
	return os.Getenv("FIREBASE_CREDENTIALS_BASE64")
}

func GetFirebaseProjectID() string {
	return os.Getenv("FIREBASE_PROJECT_ID")
}

func GetOpenAIKey() string {
	return os.Getenv("OPENAI_API_KEY")
}

func GetGooglePlacesKey() string {
	return os.Getenv("GOOGLE_PLACES_API_KEY")
}
