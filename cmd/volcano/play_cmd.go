package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/delorianv/volcano-eruptions/internal/dataset"
	"github.com/delorianv/volcano-eruptions/internal/eruption"
	"github.com/delorianv/volcano-eruptions/internal/render"
	"github.com/delorianv/volcano-eruptions/internal/simulation"
	"github.com/delorianv/volcano-eruptions/internal/ui"
)

func newPlayCmd() *cobra.Command {
	var (
		startYear int
		endYear   int
		speed     int
		plain     bool
		quiet     bool
	)

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play the eruption timeline animation",
		Long: `Sweep the simulated year across the eruption timeline, one frame
per year. Each volcano turns red around its eruption year, brightening
toward the eruption and fading back afterwards.

The default range starts just before the earliest eruption in the dataset
and runs to the present. Speed is frames per second.

Keys: space pauses, q quits.

Examples:
  volcano play
  volcano play --start 1900 --end 2023 --speed 80
  volcano play --plain > timeline.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			col, err := loadCollection(cfg)
			if err != nil {
				return err
			}

			opts := simulation.Options{
				StartYear: cfg.Simulation.StartYear,
				EndYear:   cfg.Simulation.EndYear,
				Speed:     cfg.Simulation.Speed,
			}
			if !cmd.Flags().Changed("start") && !cmd.Flags().Changed("end") &&
				cfg.Simulation.StartYear == eruption.MinYear && cfg.Simulation.EndYear == eruption.MaxYear {
				// Nothing pinned the range, follow the dataset.
				opts.StartYear, opts.EndYear = col.DefaultRange(eruption.DefaultPreFade)
			}
			if cmd.Flags().Changed("start") {
				opts.StartYear = startYear
			}
			if cmd.Flags().Changed("end") {
				opts.EndYear = endYear
			}
			if cmd.Flags().Changed("speed") {
				opts.Speed = speed
			}

			if plain || !ui.IsTerminal() {
				return runPlain(col, opts, quiet)
			}
			return runTUI(col, opts)
		},
	}

	cmd.Flags().IntVar(&startYear, "start", eruption.MinYear, "first simulated year")
	cmd.Flags().IntVar(&endYear, "end", eruption.MaxYear, "last simulated year")
	cmd.Flags().IntVarP(&speed, "speed", "s", 50, "frames per second (1-100)")
	cmd.Flags().BoolVar(&plain, "plain", false, "one summary line per frame instead of the TUI")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "with --plain, skip frames with no activity")

	return cmd
}

func runPlain(col *dataset.Collection, opts simulation.Options, quiet bool) error {
	renderer := render.NewTextRenderer(os.Stdout, col.Records)
	renderer.Quiet = quiet

	runner, err := simulation.NewRunner(col, renderer, opts)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := runner.Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}

func runTUI(col *dataset.Collection, opts simulation.Options) error {
	p := tea.NewProgram(newPlayModel(col, opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

type tickMsg time.Time

var (
	yearStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ff5f00"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	pausedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffd700"))
)

type playModel struct {
	col      *dataset.Collection
	world    *render.Map
	progress progress.Model
	opts     simulation.Options
	year     int
	frame    simulation.Frame
	paused   bool
	done     bool
	width    int
}

func newPlayModel(col *dataset.Collection, opts simulation.Options) playModel {
	if opts.PreFade == 0 {
		opts.PreFade = eruption.DefaultPreFade
	}
	if opts.PostFade == 0 {
		opts.PostFade = eruption.DefaultPostFade
	}
	opts.Speed = eruption.ClampSpeed(opts.Speed)

	m := playModel{
		col:      col,
		world:    render.NewMap(80, 20),
		progress: progress.New(progress.WithDefaultGradient()),
		opts:     opts,
		year:     opts.StartYear,
	}
	m.frame = simulation.ComputeFrame(col.Records, m.year, opts.PreFade, opts.PostFade)
	return m
}

func (m playModel) tickCmd() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.opts.Speed), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m playModel) Init() tea.Cmd {
	return m.tickCmd()
}

func (m playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.world.Resize(msg.Width, msg.Height-6)
		m.progress.Width = msg.Width - 4
		return m, nil

	case tickMsg:
		if m.paused || m.done {
			return m, m.tickCmd()
		}
		if m.year >= m.opts.EndYear {
			m.done = true
			return m, nil
		}
		m.year++
		m.frame = simulation.ComputeFrame(m.col.Records, m.year, m.opts.PreFade, m.opts.PostFade)
		return m, m.tickCmd()

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ", "p":
			m.paused = !m.paused
			return m, nil
		}
	}

	return m, nil
}

func (m playModel) View() string {
	header := fmt.Sprintf("%s  %d erupting", yearStyle.Render(ui.FormatYear(m.year)), m.frame.Active)
	if m.paused {
		header += "  " + pausedStyle.Render("PAUSED")
	} else if m.done {
		header += "  " + helpStyle.Render("done")
	}

	span := m.opts.EndYear - m.opts.StartYear
	percent := 1.0
	if span > 0 {
		percent = float64(m.year-m.opts.StartYear) / float64(span)
	}

	return header + "\n" +
		m.world.Render(m.col.Records, m.frame) + "\n" +
		render.Legend() + "\n" +
		m.progress.ViewAs(percent) + "\n" +
		helpStyle.Render("space pause · q quit")
}
