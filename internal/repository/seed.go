package repository

import (
	"context"
	_ "embed"
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"
	"wuddevdet/internal/models"
)

//go:embed seed.yaml
var defaultSeed []byte

// Seed is the starting content of the board, listed in storage order.
type Seed struct {
	Posts         []models.Post         `yaml:"posts"`
	GuestMessages []models.GuestMessage `yaml:"guestMessages"`
}

// LoadSeed reads seed data from path, or the built-in seed when path is empty.
func LoadSeed(path string) (Seed, error) {
	raw := defaultSeed
	if path != "" {
		var err error
		raw, err = os.ReadFile(path)
		if err != nil {
			return Seed{}, fmt.Errorf("reading seed file: %w", err)
		}
	}

	var seed Seed
	if err := yaml.Unmarshal(raw, &seed); err != nil {
		return Seed{}, fmt.Errorf("seed %s: %w", seedName(path), err)
	}

	for i := range seed.Posts {
		if seed.Posts[i].Comments == nil {
			seed.Posts[i].Comments = []models.Comment{}
		}
	}

	return seed, nil
}

func seedName(path string) string {
	if path == "" {
		return "(built-in)"
	}
	return path
}

// ApplySeed loads seed into an empty board. A board that already holds posts
// or messages is left as is.
func ApplySeed(ctx context.Context, repo BoardRepository, seed Seed) error {
	posts, err := repo.CountPosts(ctx)
	if err != nil {
		return err
	}
	messages, err := repo.CountGuestMessages(ctx)
	if err != nil {
		return err
	}
	if posts > 0 || messages > 0 {
		log.Printf("Board already holds %d posts and %d guest messages, skipping seed", posts, messages)
		return nil
	}

	// InsertPost prepends, so walk backwards to keep the seed's order.
	for i := len(seed.Posts) - 1; i >= 0; i-- {
		post := seed.Posts[i]
		comments := post.Comments
		post.Comments = nil
		if err := repo.InsertPost(ctx, post); err != nil {
			return fmt.Errorf("seeding post %s: %w", post.ID, err)
		}
		for _, c := range comments {
			if err := repo.AppendComment(ctx, post.ID, c); err != nil {
				return fmt.Errorf("seeding comment %s: %w", c.ID, err)
			}
		}
	}

	for i := len(seed.GuestMessages) - 1; i >= 0; i-- {
		if err := repo.InsertGuestMessage(ctx, seed.GuestMessages[i]); err != nil {
			return fmt.Errorf("seeding guest message %s: %w", seed.GuestMessages[i].ID, err)
		}
	}

	log.Printf("Seeded board with %d posts and %d guest messages", len(seed.Posts), len(seed.GuestMessages))
	return nil
}
