package ui

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/pterm/pterm"
)

const bannerText = `
▄▄███▄▄· █████╗ ██╗      █████╗ ██████╗ ██╗   ██╗    ▄▄███▄▄·████████╗ █████╗ ████████╗███████╗
██╔════╝██╔══██╗██║     ██╔══██╗██╔══██╗╚██╗ ██╔╝    ██╔════╝╚══██╔══╝██╔══██╗╚══██╔══╝██╔════╝
███████╗███████║██║     ███████║██████╔╝ ╚████╔╝     ███████╗   ██║   ███████║   ██║   ███████╗
╚════██║██╔══██║██║     ██╔══██║██╔══██╗  ╚██╔╝      ╚════██║   ██║   ██╔══██║   ██║   ╚════██║
███████║██║  ██║███████╗██║  ██║██║  ██║   ██║       ███████║   ██║   ██║  ██║   ██║   ███████║
╚═▀▀▀══╝╚═╝  ╚═╝╚══════╝╚═╝  ╚═╝╚═╝  ╚═╝   ╚═╝       ╚═▀▀▀══╝   ╚═╝   ╚═╝  ╚═╝   ╚═╝   ╚══════╝
`

// ColorizeText applies a random color gradient to the input text.
func ColorizeText(text string) string {
	source := rand.NewSource(time.Now().UnixNano())
	random := rand.New(source)

	startColor := pterm.NewRGB(uint8(random.Intn(256)), uint8(random.Intn(256)), uint8(random.Intn(256)))
	endColor := pterm.NewRGB(uint8(random.Intn(256)), uint8(random.Intn(256)), uint8(random.Intn(256)))

	strs := strings.Split(text, "")

	var coloredText string
	for i, s := range strs {
		coloredText += startColor.Fade(0, float32(len(strs)), float32(i), endColor).Sprint(s)
	}

	return coloredText
}

// PrintBanner displays the application banner unless silenced.
func PrintBanner(silence bool) {
	if !silence {
		fmt.Println(ColorizeText(bannerText))
	}
}

// ColorizeSalary formats a ruble amount with thousand separators and
// colors it by how the figure compares to the Moscow market.
func ColorizeSalary(amount int) string {
	formatted := humanize.Comma(int64(amount))

	switch {
	case amount >= 250000:
		return pterm.Green(formatted)
	case amount >= 150000:
		return pterm.LightGreen(formatted)
	case amount >= 80000:
		return pterm.Yellow(formatted)
	default:
		return pterm.Red(formatted)
	}
}
