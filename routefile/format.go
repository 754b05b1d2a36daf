package routefile

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/multiroute/network"
	"github.com/katalvlaran/multiroute/route"
)

// FormatRoute renders "LABEL: A -> B | D=.., T=.., C=..".
func FormatRoute(label string, r network.Route) string {
	return fmt.Sprintf("%s: %s | D=%d, T=%d, C=%d",
		label, strings.Join(r.Cities, " -> "),
		r.Metrics.Distance, r.Metrics.Time, r.Metrics.Cost)
}

// Lines renders one result without the trailing separator.
func Lines(res network.Result) []string {
	from, to := res.Request.Origin, res.Request.Destination
	switch res.Status {
	case network.StatusUnknownEndpoint:
		return []string{fmt.Sprintf("Route %s -> %s not found: unknown city %s",
			from, to, strings.Join(res.Unknown, ", "))}
	case network.StatusNoRoute:
		return []string{fmt.Sprintf("Route %s -> %s not found", from, to)}
	}

	lines := make([]string, 0, len(res.Routes)+1)
	for _, c := range route.Criteria {
		if r, ok := res.RouteFor(c); ok {
			lines = append(lines, FormatRoute(strings.ToUpper(c.String()), r))
		}
	}
	if res.HasCompromise() {
		lines = append(lines, FormatRoute("COMPROMISE", *res.Compromise))
	} else {
		lines = append(lines, fmt.Sprintf("Compromise route %s -> %s not found", from, to))
	}

	return lines
}

// Format writes the lines of every result back to back.
func Format(w io.Writer, results []network.Result) error {
	bw := bufio.NewWriter(w)
	for _, res := range results {
		for _, line := range Lines(res) {
			if _, err := bw.WriteString(line + "\n"); err != nil {
				return fmt.Errorf("routefile: write: %w", err)
			}
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("routefile: write: %w", err)
	}

	return nil
}
