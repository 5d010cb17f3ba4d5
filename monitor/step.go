package monitor

import (
	"fmt"

	"github.com/eiannone/keyboard"
	"github.com/fatih/color"

	"github.com/sverrel/ym7128emu/chip"
)

const stepPrompt = "< (N)ext sample | (C)ontinue | (Q)uit >"

// StepPrompt dumps the chip state for the sample just processed and
// waits for a key. Returns "next", "continue" or "quit".
func StepPrompt(proc chip.Processor, sampleNum int, left, right float64) string {
	color.Blue("sample=%d  L=%+.5f  R=%+.5f", sampleNum, left, right)
	color.Cyan("%s", RegisterDump(proc))
	color.Yellow(stepPrompt)

	for {
		char, key, err := keyboard.GetSingleKey()
		if err != nil {
			fmt.Printf("ERROR: %s\n", err)
			return "quit"
		}

		switch {
		case char == 'q' || key == keyboard.KeyCtrlC:
			return "quit"
		case char == 'c':
			return "continue"
		case char == 'n' || key == keyboard.KeyEnter:
			return "next"
		}
	}
}
