package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/shnek/internal/registry"
)

var pilotsCmd = &cobra.Command{
	Use:   "pilots",
	Short: "List all available autopilots",
	Long:  `Shows a list of all autopilots that can fly the snake in 'shnek sim'.`,
	Run:   runPilots,
}

func runPilots(cmd *cobra.Command, args []string) {
	pilots := registry.List()

	if len(pilots) == 0 {
		fmt.Println("No pilots available.")
		return
	}

	fmt.Println(render(titleStyle, "Available pilots:"))
	fmt.Println()

	t := newTable("ID", "Title")
	for _, p := range pilots {
		t.Row(p.ID, p.Title)
	}
	fmt.Println(t)

	fmt.Println()
	fmt.Println(render(hintStyle, "Run 'shnek sim --pilot <id>' to fly one."))
}
