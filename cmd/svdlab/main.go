// SPDX-License-Identifier: MIT

// Command svdlab runs an SVD denoising session from the terminal.
//
// It generates a noisy low-rank surface, decomposes it once and then walks a
// rank "slider": either a fixed list (-ranks) or integers typed on stdin
// (-interactive). Every move prints a diagnostics row and, with -out, writes a
// PNG frame.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/lowrank/lab"
	"github.com/katalvlaran/lowrank/render"
	"github.com/katalvlaran/lowrank/signal"
	"github.com/katalvlaran/lowrank/spectral"
	log "github.com/sirupsen/logrus"
)

func init() {
	log.SetOutput(os.Stderr)
	log.SetLevel(log.InfoLevel)
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})
}

func main() {
	var f flags
	flag.StringVar(&f.shape, "shape", signal.ShapeThreePeaks.String(), "surface: "+shapeNames())
	flag.IntVar(&f.size, "size", 0, "grid size (0 = shape default)")
	flag.Float64Var(&f.amplitude, "amplitude", 1, "clean surface scale (0 = pure noise)")
	flag.Float64Var(&f.sigma, "sigma", lab.DefaultSigma, "noise standard deviation")
	flag.Int64Var(&f.seed, "seed", lab.DefaultSeed, "noise seed")
	flag.StringVar(&f.mode, "mode", spectral.DefaultMode.String(), "keep-leading or zero-leading")
	flag.StringVar(&f.backend, "backend", spectral.DefaultBackend.String(), "lapack or jacobi")
	flag.IntVar(&f.sliderMin, "slider-min", -1, "lowest slider position (-1 = 1 for keep-leading, 0 for zero-leading)")
	flag.IntVar(&f.sliderMax, "slider-max", lab.DefaultSliderMax, "highest slider position")
	ranks := flag.String("ranks", "", "comma separated slider positions (default: the optimal rank)")
	interactive := flag.Bool("interactive", false, "read slider positions from stdin")
	out := flag.String("out", "", "directory for PNG frames (empty = none)")
	cmap := flag.String("colormap", render.Magma.String(), "colormap for reconstructions")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: svdlab [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Low-rank SVD reconstruction with Gavish–Donoho rank selection.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  svdlab -ranks 1,3,10\n")
		fmt.Fprintf(os.Stderr, "  svdlab -shape modulated-sinusoid -out frames -interactive\n")
		fmt.Fprintf(os.Stderr, "  svdlab -mode zero-leading -ranks 0,1,2,3\n")
	}
	flag.Parse()

	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	cfg, err := buildConfig(f)
	if err != nil {
		log.WithError(err).Fatal("bad flags")
	}
	positions, err := parseRanks(*ranks)
	if err != nil {
		log.WithError(err).Fatal("bad -ranks")
	}

	session, err := lab.NewSession(cfg, log.StandardLogger())
	if err != nil {
		log.WithError(err).Fatal("session setup failed")
	}

	displays := lab.Displays{render.NewConsole(os.Stdout)}
	if *out != "" {
		c, err := render.ParseColormap(*cmap)
		if err != nil {
			log.WithError(err).Fatal("bad -colormap")
		}
		frames, err := render.NewPNG(*out, render.WithColormap(c))
		if err != nil {
			log.WithError(err).Fatal("output directory")
		}
		if err = frames.WriteObservation(session.Observation()); err != nil {
			log.WithError(err).Fatal("writing observation")
		}
		displays = append(displays, frames)
	}

	move, err := session.Bind(displays)
	if err != nil {
		log.WithError(err).Fatal("bind display")
	}

	if len(positions) == 0 && !*interactive {
		positions = []int{session.Rank()}
	}
	for _, k := range positions {
		move(k)
	}
	if *interactive {
		if err = slider(os.Stdin, session.Rank(), move); err != nil {
			log.WithError(err).Fatal("reading stdin")
		}
	}
}

// flags holds the session flags before they are parsed into a lab.Config.
type flags struct {
	shape     string
	size      int
	amplitude float64
	sigma     float64
	seed      int64
	mode      string
	backend   string
	sliderMin int // negative picks the mode default
	sliderMax int
}

func buildConfig(f flags) (lab.Config, error) {
	cfg := lab.DefaultConfig()
	var err error
	if cfg.Shape, err = signal.ParseShape(f.shape); err != nil {
		return cfg, err
	}
	if cfg.Mode, err = spectral.ParseMode(f.mode); err != nil {
		return cfg, err
	}
	if cfg.Backend, err = spectral.ParseBackend(f.backend); err != nil {
		return cfg, err
	}
	cfg.Size, cfg.Amplitude, cfg.Sigma, cfg.Seed = f.size, f.amplitude, f.sigma, f.seed
	cfg.SliderMin, cfg.SliderMax = f.sliderMin, f.sliderMax
	if f.sliderMin < 0 {
		// removing nothing is the zero-leading baseline
		cfg.SliderMin = lab.DefaultSliderMin
		if cfg.Mode == spectral.ZeroLeading {
			cfg.SliderMin = 0
		}
	}

	return cfg, cfg.Validate()
}

// parseRanks splits "1, 3,10" into slider positions.
func parseRanks(list string) ([]int, error) {
	if strings.TrimSpace(list) == "" {
		return nil, nil
	}
	parts := strings.Split(list, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		k, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("rank %q: %w", p, err)
		}
		out = append(out, k)
	}

	return out, nil
}

// slider feeds one position per line to move until EOF or "q".
// "+" and "-" step from the current position; blank lines repeat it.
func slider(r io.Reader, start int, move lab.Observer) error {
	cur := start
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		switch line {
		case "q", "quit":
			return nil
		case "+":
			cur++
		case "-":
			cur--
		case "":
		default:
			k, err := strconv.Atoi(line)
			if err != nil {
				log.WithField("input", line).Warn("not a rank")
				continue
			}
			cur = k
		}
		cur = move(cur).Rank
	}

	return sc.Err()
}

func shapeNames() string {
	names := make([]string, 0, len(signal.Shapes()))
	for _, s := range signal.Shapes() {
		names = append(names, s.String())
	}

	return strings.Join(names, ", ")
}
