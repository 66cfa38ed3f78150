package models

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/goccy/go-json"
)

// Point is one labelled value of an aggregate dataset.
type Point struct {
	Label string
	Value float64
}

// Series is an aggregate dataset in server order. On the wire it is a JSON
// object; key order is kept on both decode and encode.
type Series []Point

// Labels returns the keys in order.
func (s Series) Labels() []string {
	labels := make([]string, len(s))
	for i, p := range s {
		labels[i] = p.Label
	}
	return labels
}

// Values returns the values in order.
func (s Series) Values() []float64 {
	values := make([]float64, len(s))
	for i, p := range s {
		values[i] = p.Value
	}
	return values
}

// MarshalJSON writes the points as an object in slice order.
func (s Series) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, p := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(p.Label)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.WriteString(strconv.FormatFloat(p.Value, 'f', -1, 64))
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads an object of numbers token by token so the key order survives.
func (s *Series) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*s = nil
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("series: expected object, got %v", tok)
	}

	out := Series{}
	for dec.More() {
		tok, err = dec.Token()
		if err != nil {
			return err
		}
		label, ok := tok.(string)
		if !ok {
			return fmt.Errorf("series: expected string key, got %v", tok)
		}

		tok, err = dec.Token()
		if err != nil {
			return err
		}
		var value float64
		switch v := tok.(type) {
		case json.Number:
			value, err = v.Float64()
			if err != nil {
				return fmt.Errorf("series: value for %q: %w", label, err)
			}
		case float64:
			value = v
		case nil:
			value = 0
		default:
			return fmt.Errorf("series: value for %q is not a number", label)
		}
		out = append(out, Point{Label: label, Value: value})
	}
	*s = out
	return nil
}

// SalesDataResponse is the response of GET /sales_data.
type SalesDataResponse struct {
	SalesData     Series `json:"sales_data"`
	InventoryData Series `json:"inventory_data"`
}

// LowStockResponse is the response of GET /get_low_stock.
type LowStockResponse struct {
	LowStock Series `json:"low_stock"`
}
