package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"ArGuide/config/environment"
	"ArGuide/services"

	"github.com/joho/godotenv"
)

// spotgen builds a tourist spots database file for a region. The server never
// runs this; it only reads the output file at startup.
func main() {
	region := flag.String("region", "", "region name to generate spots for (required)")
	maxSpots := flag.Int("max", 20, "maximum number of spots (up to 20)")
	out := flag.String("out", "", "output file path (default {region}_tourist_spots.json)")
	flag.Parse()

	if *region == "" {
		log.Fatal("-region is required")
	}

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment values")
	}

	placesKey := environment.GetGooglePlacesKey()
	if placesKey == "" {
		log.Fatal("GOOGLE_PLACES_API_KEY environment variable is missing")
	}
	openAIKey := environment.GetOpenAIKey()
	if openAIKey == "" {
		log.Fatal("OPENAI_API_KEY environment variable is missing")
	}

	outPath := *out
	if outPath == "" {
		outPath = fmt.Sprintf("%s_tourist_spots.json", *region)
	}

	generator := services.NewGeneratorService(placesKey, openAIKey)

	spots, err := generator.GenerateDatabase(context.Background(), *region, *maxSpots)
	if err != nil {
		log.Fatal("Generation failed:", err)
	}

	if err := services.WriteDatabase(outPath, spots); err != nil {
		log.Fatal("Failed to write database:", err)
	}
	log.Printf("Wrote %d spots to %s\n", len(spots), outPath)
}
