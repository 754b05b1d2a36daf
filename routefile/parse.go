package routefile

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/multiroute/network"
)

// Section header lines.
const (
	headerCities   = "[CITIES]"
	headerRoads    = "[ROADS]"
	headerRequests = "[REQUESTS]"
)

type section int

const (
	sectionNone section = iota
	sectionCities
	sectionRoads
	sectionRequests
)

// Document is the parsed content of a route file.
type Document struct {
	Cities   []network.City
	Roads    []network.Road
	Requests []network.Request

	// Skipped counts malformed lines that were ignored.
	Skipped int
}

// Parse reads a route file. Only read errors are returned; malformed lines
// are skipped.
func Parse(r io.Reader) (*Document, error) {
	doc := &Document{}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	cur := sectionNone
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		switch line {
		case headerCities:
			cur = sectionCities
			continue
		case headerRoads:
			cur = sectionRoads
			continue
		case headerRequests:
			cur = sectionRequests
			continue
		}

		var ok bool
		switch cur {
		case sectionCities:
			var c network.City
			if c, ok = parseCity(line); ok {
				doc.Cities = append(doc.Cities, c)
			}
		case sectionRoads:
			var rd network.Road
			if rd, ok = parseRoad(line); ok {
				doc.Roads = append(doc.Roads, rd)
			}
		case sectionRequests:
			var req network.Request
			if req, ok = parseRequest(line); ok {
				doc.Requests = append(doc.Requests, req)
			}
		}
		if !ok {
			doc.Skipped++
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("routefile: read: %w", err)
	}

	return doc, nil
}

// Network builds a network from the document's cities and roads. A
// declaration the network rejects is left out and counted in d.Skipped, so
// one bad line never drops the rest of the batch.
func (d *Document) Network(opts ...network.Option) *network.Network {
	n := network.New(opts...)
	for _, c := range d.Cities {
		if err := n.AddCity(c.ID, c.Name); err != nil {
			d.Skipped++
		}
	}
	for _, r := range d.Roads {
		if err := n.AddRoad(r); err != nil {
			d.Skipped++
		}
	}

	return n
}

// parseCity parses "ID: Name".
func parseCity(line string) (network.City, bool) {
	idPart, name, found := strings.Cut(line, ":")
	if !found {
		return network.City{}, false
	}
	id, err := strconv.Atoi(strings.TrimSpace(idPart))
	name = strings.TrimSpace(name)
	if err != nil || name == "" {
		return network.City{}, false
	}

	return network.City{ID: id, Name: name}, true
}

// parseRoad parses "A - B: distance, time, cost".
func parseRoad(line string) (network.Road, bool) {
	ends, params, found := strings.Cut(line, ":")
	if !found {
		return network.Road{}, false
	}
	aPart, bPart, found := strings.Cut(ends, "-")
	if !found {
		return network.Road{}, false
	}
	a, errA := strconv.Atoi(strings.TrimSpace(aPart))
	b, errB := strconv.Atoi(strings.TrimSpace(bPart))
	if errA != nil || errB != nil {
		return network.Road{}, false
	}

	fields := strings.Split(params, ",")
	if len(fields) != 3 {
		return network.Road{}, false
	}
	var w [3]int64
	for i, f := range fields {
		v, err := strconv.ParseInt(strings.TrimSpace(f), 10, 64)
		if err != nil || v < 0 {
			return network.Road{}, false
		}
		w[i] = v
	}

	return network.Road{A: a, B: b, Distance: w[0], Time: w[1], Cost: w[2]}, true
}

// parseRequest parses "From -> To | (p1, p2, ...)". A priority part not
// wrapped in parentheses yields an empty priority list.
func parseRequest(line string) (network.Request, bool) {
	routePart, prioPart, found := strings.Cut(line, "|")
	if !found {
		return network.Request{}, false
	}
	from, to, found := strings.Cut(routePart, "->")
	if !found {
		return network.Request{}, false
	}
	from, to = strings.TrimSpace(from), strings.TrimSpace(to)
	if from == "" || to == "" || strings.Contains(to, "->") {
		return network.Request{}, false
	}

	req := network.Request{Origin: from, Destination: to, Priorities: []string{}}
	prioPart = strings.TrimSpace(prioPart)
	if strings.HasPrefix(prioPart, "(") && strings.HasSuffix(prioPart, ")") {
		inner := strings.TrimSpace(prioPart[1 : len(prioPart)-1])
		if inner != "" {
			for _, tok := range strings.Split(inner, ",") {
				req.Priorities = append(req.Priorities, strings.TrimSpace(tok))
			}
		}
	}

	return req, true
}
