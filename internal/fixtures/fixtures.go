// Package fixtures holds the hard-coded seed catalog: ten users and twenty
// games. Factories are pure; no randomness, no I/O.
package fixtures

import (
	"fmt"

	"ministeam-seeder/internal/domain"
)

const seedPassword = "senha123"

// Users returns the fixture users seeded into the identity service.
func Users() []domain.FixtureUser {
	return []domain.FixtureUser{
		{DisplayName: "João Silva", Email: "joao.silva@email.com", Password: seedPassword},
		{DisplayName: "Maria Santos", Email: "maria.santos@email.com", Password: seedPassword},
		{DisplayName: "Pedro Costa", Email: "pedro.costa@email.com", Password: seedPassword},
		{DisplayName: "Ana Lima", Email: "ana.lima@email.com", Password: seedPassword},
		{DisplayName: "Carlos Souza", Email: "carlos.souza@email.com", Password: seedPassword},
		{DisplayName: "Beatriz Alves", Email: "beatriz.alves@email.com", Password: seedPassword},
		{DisplayName: "Rafael Oliveira", Email: "rafael.oliveira@email.com", Password: seedPassword},
		{DisplayName: "Juliana Pereira", Email: "juliana.pereira@email.com", Password: seedPassword},
		{DisplayName: "Lucas Rodrigues", Email: "lucas.rodrigues@email.com", Password: seedPassword},
		{DisplayName: "Fernanda Martins", Email: "fernanda.martins@email.com", Password: seedPassword},
	}
}

// Games returns the fixture games seeded into the catalog service.
func Games() []domain.FixtureGame {
	return []domain.FixtureGame{
		{
			GameID:      "the-witcher-3",
			DisplayName: "The Witcher 3: Wild Hunt",
			Description: "Epic open-world RPG",
			Price:       89.99,
			Developer:   "CD Projekt RED",
			Tags:        []string{"RPG", "Open World", "Fantasy"},
			Genres:      []string{"Action RPG"},
			AgeRating:   "18",
		},
		{
			GameID:      "cyberpunk-2077",
			DisplayName: "Cyberpunk 2077",
			Description: "Futuristic action RPG",
			Price:       199.99,
			Developer:   "CD Projekt RED",
			Tags:        []string{"RPG", "Cyberpunk", "Open World"},
			Genres:      []string{"Action RPG"},
			AgeRating:   "18",
		},
		{
			GameID:      "red-dead-2",
			DisplayName: "Red Dead Redemption 2",
			Description: "Old west adventure",
			Price:       249.99,
			Developer:   "Rockstar Games",
			Tags:        []string{"Action", "Adventure", "Western"},
			Genres:      []string{"Action"},
			AgeRating:   "18",
		},
		{
			GameID:      "stardew-valley",
			DisplayName: "Stardew Valley",
			Description: "Relaxing farming simulator",
			Price:       24.99,
			Developer:   "ConcernedApe",
			Tags:        []string{"Farming", "Simulation", "Indie"},
			Genres:      []string{"Simulation"},
			AgeRating:   "10",
		},
		{
			GameID:      "hollow-knight",
			DisplayName: "Hollow Knight",
			Description: "Challenging metroidvania",
			Price:       34.99,
			Developer:   "Team Cherry",
			Tags:        []string{"Metroidvania", "Indie", "Platformer"},
			Genres:      []string{"Action"},
			AgeRating:   "10",
		},
		{
			GameID:      "elden-ring",
			DisplayName: "Elden Ring",
			Description: "Souls-like action RPG",
			Price:       299.99,
			Developer:   "FromSoftware",
			Tags:        []string{"Souls-like", "RPG", "Open World"},
			Genres:      []string{"Action RPG"},
			AgeRating:   "16",
		},
		{
			GameID:      "baldurs-gate-3",
			DisplayName: "Baldur's Gate 3",
			Description: "RPG based on D&D",
			Price:       199.99,
			Developer:   "Larian Studios",
			Tags:        []string{"RPG", "Turn-Based", "Fantasy"},
			Genres:      []string{"RPG"},
			AgeRating:   "18",
		},
		{
			GameID:      "hades",
			DisplayName: "Hades",
			Description: "Mythological action roguelike",
			Price:       49.99,
			Developer:   "Supergiant Games",
			Tags:        []string{"Roguelike", "Action", "Indie"},
			Genres:      []string{"Action"},
			AgeRating:   "12",
		},
		{
			GameID:      "portal-2",
			DisplayName: "Portal 2",
			Description: "First-person puzzle",
			Price:       29.99,
			Developer:   "Valve",
			Tags:        []string{"Puzzle", "First-Person", "Sci-Fi"},
			Genres:      []string{"Puzzle"},
			AgeRating:   "12",
		},
		{
			GameID:      "terraria",
			DisplayName: "Terraria",
			Description: "2D exploration adventure",
			Price:       19.99,
			Developer:   "Re-Logic",
			Tags:        []string{"Sandbox", "Adventure", "Crafting"},
			Genres:      []string{"Action"},
			AgeRating:   "12",
		},
		{
			GameID:      "minecraft",
			DisplayName: "Minecraft",
			Description: "Infinite building sandbox",
			Price:       129.99,
			Developer:   "Mojang Studios",
			Tags:        []string{"Sandbox", "Survival", "Crafting"},
			Genres:      []string{"Sandbox"},
			AgeRating:   "E",
		},
		{
			GameID:      "dark-souls-3",
			DisplayName: "Dark Souls III",
			Description: "Challenging action RPG",
			Price:       149.99,
			Developer:   "FromSoftware",
			Tags:        []string{"Souls-like", "RPG", "Dark Fantasy"},
			Genres:      []string{"Action RPG"},
			AgeRating:   "16",
		},
		{
			GameID:      "celeste",
			DisplayName: "Celeste",
			Description: "Demanding, heartfelt platformer",
			Price:       39.99,
			Developer:   "Maddy Makes Games",
			Tags:        []string{"Platformer", "Indie", "Difficult"},
			Genres:      []string{"Platformer"},
			AgeRating:   "10",
		},
		{
			GameID:      "disco-elysium",
			DisplayName: "Disco Elysium",
			Description: "Singular narrative RPG",
			Price:       89.99,
			Developer:   "ZA/UM",
			Tags:        []string{"RPG", "Story Rich", "Detective"},
			Genres:      []string{"RPG"},
			AgeRating:   "18",
		},
		{
			GameID:      "sekiro",
			DisplayName: "Sekiro: Shadows Die Twice",
			Description: "Action-adventure in feudal Japan",
			Price:       199.99,
			Developer:   "FromSoftware",
			Tags:        []string{"Action", "Souls-like", "Ninja"},
			Genres:      []string{"Action"},
			AgeRating:   "18",
		},
		{
			GameID:      "undertale",
			DisplayName: "Undertale",
			Description: "RPG where choices matter",
			Price:       19.99,
			Developer:   "Toby Fox",
			Tags:        []string{"RPG", "Indie", "Story Rich"},
			Genres:      []string{"RPG"},
			AgeRating:   "10",
		},
		{
			GameID:      "factorio",
			DisplayName: "Factorio",
			Description: "Industrial automation simulator",
			Price:       69.99,
			Developer:   "Wube Software",
			Tags:        []string{"Simulation", "Strategy", "Automation"},
			Genres:      []string{"Simulation"},
			AgeRating:   "10",
		},
		{
			GameID:      "rimworld",
			DisplayName: "RimWorld",
			Description: "Space colony simulator",
			Price:       79.99,
			Developer:   "Ludeon Studios",
			Tags:        []string{"Simulation", "Strategy", "Colony Sim"},
			Genres:      []string{"Simulation"},
			AgeRating:   "16",
		},
		{
			GameID:      "subnautica",
			DisplayName: "Subnautica",
			Description: "Underwater exploration on an alien world",
			Price:       59.99,
			Developer:   "Unknown Worlds",
			Tags:        []string{"Survival", "Exploration", "Underwater"},
			Genres:      []string{"Adventure"},
			AgeRating:   "12",
		},
		{
			GameID:      "valheim",
			DisplayName: "Valheim",
			Description: "Viking survival in a procedural world",
			Price:       49.99,
			Developer:   "Iron Gate Studio",
			Tags:        []string{"Survival", "Crafting", "Viking"},
			Genres:      []string{"Survival"},
			AgeRating:   "12",
		},
	}
}

// CatalogEntry enriches a fixture game into the full catalog payload: the
// fixed minimum-spec block, a cover image derived from the game id, and the
// active flag.
func CatalogEntry(game domain.FixtureGame) domain.CatalogEntry {
	return domain.CatalogEntry{
		FixtureGame: game,
		Specs: domain.GameSpecs{
			Minimum: domain.MinSpec{
				OS:        "Windows 10",
				Processor: "Intel i5",
				Memory:    "8 GB RAM",
				Storage:   "50 GB",
			},
		},
		Media: domain.GameMedia{
			CoverImageURL: fmt.Sprintf("https://cdn.ministeam.com/games/%s/cover.jpg", game.GameID),
		},
		Active: true,
	}
}
