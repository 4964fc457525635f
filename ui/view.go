package ui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/hashicorp/go-hclog"

	"github.com/arshkumarsingh/rorex"
	"github.com/arshkumarsingh/rorex/runner"
)

// drainInterval is the redraw frame driving the channel drain: one poll,
// one apply, one refresh per tick.
const drainInterval = 100 * time.Millisecond

type (
	Config struct {
		Runner   *runner.Runner
		Provider rorex.Provider
		Journals []rorex.Journal
		Logger   hclog.Logger
		Base     string
		Target   string
	}

	View struct {
		state    State
		runner   *runner.Runner
		provider rorex.Provider
		journals []rorex.Journal
		logger   hclog.Logger

		window          fyne.Window
		fetchRateBtn    *widget.Button
		fetchHistoryBtn *widget.Button
		rateLabel       *widget.Label
		statusLabel     *widget.Label
		trendImage      *canvas.Image
		historyImage    *canvas.Image
		done            chan struct{}
	}
)

func New(app fyne.App, config Config) *View {
	state := NewState()

	if config.Base != "" && rorex.SupportedCurrency(config.Base) {
		state.Base = config.Base
	}

	if config.Target != "" && rorex.SupportedCurrency(config.Target) {
		state.Target = config.Target
	}

	logger := config.Logger

	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	v := &View{
		state:    state,
		runner:   config.Runner,
		provider: config.Provider,
		journals: config.Journals,
		logger:   logger,
		done:     make(chan struct{}),
	}

	v.window = app.NewWindow("Forex Rate Fetcher")
	v.window.SetContent(v.buildForm())
	v.window.Resize(fyne.NewSize(760, 920))
	v.window.SetOnClosed(func() {
		close(v.done)
	})

	return v
}

// Run shows the window and blocks until it is closed. Background tasks
// started before closing run to completion but their results are no longer
// drained.
func (v *View) Run() {
	go v.drainLoop()
	v.window.ShowAndRun()
}

func (v *View) buildForm() fyne.CanvasObject {
	keyEntry := widget.NewPasswordEntry()
	keyEntry.SetPlaceHolder("exchangerate-api key")
	keyEntry.OnChanged = func(key string) {
		v.state.APIKey = key
	}

	baseSelect := widget.NewSelect(rorex.Currencies, func(code string) {
		v.state.Base = code
	})
	baseSelect.SetSelected(v.state.Base)

	targetSelect := widget.NewSelect(rorex.Currencies, func(code string) {
		v.state.Target = code
	})
	targetSelect.SetSelected(v.state.Target)

	v.fetchRateBtn = widget.NewButton("Fetch Rate", v.onFetchRate)
	v.fetchHistoryBtn = widget.NewButton("Fetch Historical Rates", v.onFetchHistory)

	v.rateLabel = widget.NewLabel("Rate: not fetched")
	v.statusLabel = widget.NewLabel("")

	v.trendImage = &canvas.Image{FillMode: canvas.ImageFillContain}
	v.trendImage.SetMinSize(fyne.NewSize(chartWidth, chartHeight))
	v.trendImage.Hide()

	v.historyImage = &canvas.Image{FillMode: canvas.ImageFillContain}
	v.historyImage.SetMinSize(fyne.NewSize(chartWidth, chartHeight))
	v.historyImage.Hide()

	return container.NewVBox(
		widget.NewLabelWithStyle("Forex Rate Fetcher", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewBorder(nil, nil, widget.NewLabel("API Key:"), nil, keyEntry),
		container.NewHBox(
			widget.NewLabel("Base Currency:"), baseSelect,
			widget.NewLabel("Target Currency:"), targetSelect,
		),
		container.NewHBox(v.fetchRateBtn, v.fetchHistoryBtn),
		v.rateLabel,
		v.statusLabel,
		v.trendImage,
		v.historyImage,
	)
}

func (v *View) onFetchRate() {
	pair := v.state.Pair()

	if !v.runner.FetchRate(context.Background(), v.state.APIKey, pair) {
		v.state.Status = fmt.Sprintf("%s rate fetch already running", pair)
		v.refresh()
		return
	}

	v.state.Status = fmt.Sprintf("fetching %s rate", pair)
	v.refresh()
}

func (v *View) onFetchHistory() {
	pair := v.state.Pair()

	if !v.runner.FetchHistory(context.Background(), v.state.APIKey, pair) {
		v.state.Status = fmt.Sprintf("%s history fetch already running", pair)
		v.refresh()
		return
	}

	v.state.Status = fmt.Sprintf("fetching %s history", pair)
	v.refresh()
}

func (v *View) drainLoop() {
	ticker := time.NewTicker(drainInterval)
	defer ticker.Stop()

	for {
		select {
		case <-v.done:
			return
		case <-ticker.C:
			result, ok := v.runner.Poll()

			if !ok {
				continue
			}

			fyne.Do(func() {
				v.applyResult(result)
			})

			v.record(result)
		}
	}
}

func (v *View) applyResult(result runner.Result) {
	v.state = Apply(v.state, result)
	v.refresh()
}

// record appends a successful point-rate fetch to every configured journal.
// Journal failures are logged, never surfaced to the form.
func (v *View) record(result runner.Result) {
	if result.Err != nil || result.Kind != runner.KindRate {
		return
	}

	for _, j := range v.journals {
		_, err := j.Record(rorex.Entry{
			Pair:     result.Pair,
			Provider: v.provider,
			Rate:     result.Rate,
		})

		if err != nil {
			v.logger.Warn("recording fetch", "journal", j.ProviderName(), "pair", result.Pair.String(), "error", err)
		}
	}
}

func (v *View) refresh() {
	if v.state.Rate != nil {
		v.rateLabel.SetText("Rate: " + strconv.FormatFloat(*v.state.Rate, 'f', -1, 64))
	} else {
		v.rateLabel.SetText("Rate: not fetched")
	}

	v.statusLabel.SetText(v.state.Status)

	v.renderSeries(v.trendImage, v.state.Trend)

	historyRates := make([]float64, len(v.state.History))

	for i, sample := range v.state.History {
		historyRates[i] = sample.Rate
	}

	v.renderSeries(v.historyImage, historyRates)
}

func (v *View) renderSeries(img *canvas.Image, values []float64) {
	rendered, err := renderLineChart(values)

	if err != nil {
		if !errors.Is(err, ErrNotEnoughPoints) {
			v.logger.Warn("rendering chart", "error", err)
		}

		return
	}

	img.Image = rendered
	img.Show()
	img.Refresh()
}
