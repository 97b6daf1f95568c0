package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/stricto/internal/achievement"
)

func newBadgesCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "badges",
		Short: "Show the badge collection",
		RunE: func(cmd *cobra.Command, args []string) error {
			dna, err := a.Profile.Get(context.Background(), a.UserID)
			if err != nil {
				return err
			}

			unlocked := 0
			fmt.Println(titleStyle.Render("BADGES"))
			for _, b := range achievement.Catalog {
				if dna.Gamification.HasBadge(b.ID) {
					unlocked++
					fmt.Println(badgeStyle.Render(fmt.Sprintf("%s - %s", b.Title, b.Description)))
				} else {
					fmt.Println(lockedBadgeStyle.Render(fmt.Sprintf("%s (locked) - %s", b.Title, b.Description)))
				}
			}
			fmt.Printf("\n%d of %d unlocked · rank %s\n",
				unlocked, len(achievement.Catalog),
				okStyle.Render(achievement.Rank(dna.Gamification.TotalTasksCompleted)))
			return nil
		},
	}
}
