package cmd

import (
	"encoding/json"
	"fmt"
)

// OutputFormatter prints either text or JSON, selected by the global
// --json flag, the same split the teacher's CLI uses for every command.
type OutputFormatter struct {
	JSON bool
}

func NewOutputFormatter() *OutputFormatter {
	return &OutputFormatter{JSON: isJSONOutput()}
}

func (f *OutputFormatter) Print(data any) error {
	if f.JSON {
		return f.PrintJSON(data)
	}
	return f.PrintText(data)
}

func (f *OutputFormatter) PrintJSON(data any) error {
	b, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Println(string(b))
	return nil
}

func (f *OutputFormatter) PrintText(data any) error {
	switch v := data.(type) {
	case string:
		fmt.Println(v)
	case fmt.Stringer:
		fmt.Println(v.String())
	default:
		fmt.Printf("%v\n", v)
	}
	return nil
}
