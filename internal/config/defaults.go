package config

// Default returns a complete temperate world with four biomes.
func Default() *WorldConfig {
	return &WorldConfig{
		SeedVersion: "0.1",
		WorldID:     "default-world",
		Meta: MetaConfig{
			Name:        "Default World",
			Description: "Temperate planet with four biomes",
			Author:      "seedgen",
		},
		Environment: EnvironmentConfig{
			Atmosphere: AtmosphereConfig{
				PressureKPa:        101.3,
				BaseTemperatureC:   15,
				HumidityGlobalMean: 0.6,
			},
			ClimateModel: ClimateModelConfig{
				ModelType:                  "banded",
				SeaLevelMeters:             0,
				TemperatureLapseRateCPerKm: 6.5,
				PrecipitationScale:         1,
				WindGlobalPattern:          "three_cell",
				StormFrequency:             0.2,
				StormIntensityMean:         0.5,
			},
		},
		Geology: GeologyConfig{
			Heightmap: HeightmapConfig{
				GenerationMode:          "tectonic_erosion",
				BaseSeed:                1337,
				ContinentalScaleKm:      2000,
				MountainAmplitudeMeters: 3000,
				ErosionIterations:       8,
				RiverDensity:            0.5,
				MaxReliefMeters:         3500,
				Noise:                   "perlin",
			},
		},
		Biomes:    DefaultBiomes(),
		WorldSeed: 1337,
		SeaLevel:  0.4,
	}
}

// DefaultBiomes returns the stock biome list.
func DefaultBiomes() []BiomeConfig {
	return []BiomeConfig{
		{
			ID:          "temperate_forest",
			DisplayName: "Temperate Forest",
			ClimateRange: ClimateRangeConfig{
				TemperatureC:    Range{5, 22},
				Humidity:        Range{0.45, 0.9},
				ElevationMeters: Range{0, 1800},
			},
			PrecipitationRangeMmPerYear: Range{600, 2000},
			VegetationDensity:           0.8,
			AllowSettlements:            true,
		},
		{
			ID:          "hot_desert",
			DisplayName: "Hot Desert",
			ClimateRange: ClimateRangeConfig{
				TemperatureC:    Range{20, 45},
				Humidity:        Range{0.0, 0.35},
				ElevationMeters: Range{0, 1500},
			},
			PrecipitationRangeMmPerYear: Range{0, 400},
			VegetationDensity:           0.05,
			AllowSettlements:            true,
		},
		{
			ID:          "cold_mountains",
			DisplayName: "Cold Mountains",
			ClimateRange: ClimateRangeConfig{
				TemperatureC:    Range{-20, 8},
				Humidity:        Range{0.2, 0.8},
				ElevationMeters: Range{1600, 3500},
			},
			PrecipitationRangeMmPerYear: Range{300, 1500},
			VegetationDensity:           0.1,
		},
		{
			ID:          "tundra",
			DisplayName: "Tundra",
			ClimateRange: ClimateRangeConfig{
				TemperatureC:    Range{-25, 4},
				Humidity:        Range{0.3, 0.8},
				ElevationMeters: Range{0, 1200},
			},
			PrecipitationRangeMmPerYear: Range{150, 700},
			VegetationDensity:           0.25,
		},
	}
}
