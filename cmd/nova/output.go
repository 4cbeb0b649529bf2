package main

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/novahq/nova/internal/remote"
)

// writeSearchResults writes results in the requested format.
func writeSearchResults(w io.Writer, results []remote.SearchResult, format string) error {
	switch format {
	case "json":
		return writeJSON(w, results)
	case "yaml":
		return writeYAML(w, results)
	case "table", "":
		if len(results) == 0 {
			fmt.Fprintln(w, "No datasets found.")
			return nil
		}
		for _, r := range results {
			fmt.Fprintf(w, "%s/%s  (owner: %s)\n", r.Collection, r.Name, r.Owner)
		}
		return nil
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

// writeDatasets writes the dataset list in the requested format.
func writeDatasets(w io.Writer, datasets []remote.Dataset, format string) error {
	switch format {
	case "json":
		return writeJSON(w, datasets)
	case "yaml":
		return writeYAML(w, datasets)
	case "table", "":
		if len(datasets) == 0 {
			fmt.Fprintln(w, "No datasets.")
			return nil
		}
		for _, d := range datasets {
			name := d.Name
			if d.Collection != "" {
				name = d.Collection + "/" + d.Name
			}
			if d.Description != "" {
				fmt.Fprintf(w, "%s  %s\n", name, d.Description)
			} else {
				fmt.Fprintln(w, name)
			}
		}
		return nil
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(v); err != nil {
		enc.Close()
		return err
	}
	return enc.Close()
}
