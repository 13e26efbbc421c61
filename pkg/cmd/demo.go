package cmd

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/bstviz/bstviz/pkg/anim"
	"github.com/bstviz/bstviz/pkg/visualizer"
)

func init() {
	DemoCmd.Flags().Int("random", 0, "generate a random tree with this many nodes instead of the sample values")
	RootCmd.AddCommand(DemoCmd)
}

var demoValues = []int{50, 30, 70, 20, 40, 60, 80}

var DemoCmd = &cobra.Command{
	Use:   "demo",
	Short: "run a scripted insert/delete/undo/redo session",

	RunE: func(cmd *cobra.Command, args []string) error {
		randomCount, err := cmd.Flags().GetInt("random")
		if err != nil {
			return err
		}

		config, err := loadConfig()
		if err != nil {
			return err
		}

		viz := visualizer.New(*config)

		if randomCount > 0 {
			values, err := viz.GenerateRandom(randomCount)
			if err != nil {
				return err
			}
			log.Infof("generated random values: %v", values)
		} else {
			for _, value := range demoValues {
				if _, err := viz.Insert(value); err != nil {
					return err
				}
			}
		}

		fmt.Print(viz.Tree().Sprint())
		printTraversals(viz)
		fmt.Printf("size=%d height=%d balanced=%v\n", viz.Size(), viz.Height(), viz.IsBalanced())

		target := viz.Inorder()[len(viz.Inorder())/2]

		if _, path, err := viz.Search(target); err == nil {
			fmt.Printf("search %d: path %v\n", target, path)
			playHighlight(target, config.AnimationFPS)
		}

		if err := viz.Delete(target); err != nil {
			return err
		}
		fmt.Printf("deleted %d:\n", target)
		fmt.Print(viz.Tree().Sprint())

		if name, err := viz.Undo(); err == nil {
			fmt.Printf("undone %q:\n", name)
			fmt.Print(viz.Tree().Sprint())
		}

		if name, err := viz.Redo(); err == nil {
			fmt.Printf("redone %q:\n", name)
			fmt.Print(viz.Tree().Sprint())
		}

		return nil
	},
}

// playHighlight runs a short highlight animation for a node, stepping the
// engine with fixed deltas so the demo output is deterministic.
func playHighlight(value int, fps int) {
	if fps <= 0 {
		fps = anim.DefaultFPS
	}

	engine := anim.NewEngine()
	engine.Animate(500*time.Millisecond, anim.EaseInOut, func(progress float64) {
		log.Debugf("highlight %d: %.2f", value, progress)
	})

	delta := time.Second / time.Duration(fps)
	for engine.Active() > 0 {
		engine.Update(delta)
	}
}
