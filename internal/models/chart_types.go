package models

// ChartKind is the chart-library chart type.
type ChartKind string

const (
	ChartBar  ChartKind = "bar"
	ChartLine ChartKind = "line"
)

// Chart is a read-only projection of one aggregate dataset onto a chart surface.
type Chart struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Kind            ChartKind `json:"kind"`
	Label           string    `json:"label"`
	Labels          []string  `json:"labels"`
	Values          []float64 `json:"values"`
	BackgroundColor string    `json:"backgroundColor"`
	BorderColor     string    `json:"borderColor"`
}

// ChartDataset mirrors one entry of data.datasets in the chart-library config.
type ChartDataset struct {
	Label           string    `json:"label"`
	Data            []float64 `json:"data"`
	BackgroundColor string    `json:"backgroundColor"`
	BorderColor     string    `json:"borderColor"`
	BorderWidth     int       `json:"borderWidth"`
}

// ChartConfig is the configuration document handed to the chart library.
type ChartConfig struct {
	Type ChartKind `json:"type"`
	Data struct {
		Labels   []string       `json:"labels"`
		Datasets []ChartDataset `json:"datasets"`
	} `json:"data"`
	Options struct {
		Responsive bool `json:"responsive"`
	} `json:"options"`
}

// Config builds the chart-library configuration for c.
func (c Chart) Config() ChartConfig {
	var cfg ChartConfig
	cfg.Type = c.Kind
	cfg.Data.Labels = c.Labels
	cfg.Data.Datasets = []ChartDataset{{
		Label:           c.Label,
		Data:            c.Values,
		BackgroundColor: c.BackgroundColor,
		BorderColor:     c.BorderColor,
		BorderWidth:     1,
	}}
	cfg.Options.Responsive = true
	return cfg
}
