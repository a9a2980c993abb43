package loader

import (
	"bufio"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/conveyor/core"
)

// DefaultMarker opens a new section when it appears as a token on a line.
const DefaultMarker = "#"

// maxLineBytes bounds a single input line.
const maxLineBytes = 1 << 20

// Option configures Parse.
type Option func(*options)

type options struct {
	marker string
}

// WithMarker overrides the section marker token. An empty marker is ignored.
func WithMarker(marker string) Option {
	return func(o *options) {
		if marker != "" {
			o.marker = marker
		}
	}
}

// parser holds the state of one Parse call.
type parser struct {
	opts    options
	section Section
	line    int
	m       *Manifest
	bagSeen map[string]struct{}
}

// Parse reads a manifest from r. Only read failures are returned as errors;
// bad lines are collected in Manifest.Problems.
func Parse(r io.Reader, opts ...Option) (*Manifest, error) {
	o := options{marker: DefaultMarker}
	for _, opt := range opts {
		opt(&o)
	}
	p := &parser{
		opts: o,
		m: &Manifest{
			Departures: make(map[string]Departure),
		},
		bagSeen: make(map[string]struct{}),
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for sc.Scan() {
		p.line++
		p.consume(sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrapf(err, "loader: read line %d", p.line+1)
	}

	sort.SliceStable(p.m.Bags, func(i, j int) bool { return p.m.Bags[i].ID < p.m.Bags[j].ID })

	return p.m, nil
}

// ParseFile opens path and parses it.
func ParseFile(path string, opts ...Option) (*Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "loader: open %s", path)
	}
	defer f.Close()

	m, err := Parse(f, opts...)
	if err != nil {
		return nil, errors.Wrapf(err, "loader: parse %s", path)
	}

	return m, nil
}

// consume handles one raw line.
func (p *parser) consume(text string) {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return
	}
	for _, f := range fields {
		if f == p.opts.marker {
			p.section++
			return
		}
	}

	switch p.section {
	case SectionConveyor:
		p.link(text, fields)
	case SectionDepartures:
		p.departure(text, fields)
	case SectionBags:
		p.bag(text, fields)
	default:
		p.problem(text, ErrOutsideSection)
	}
}

func (p *parser) problem(text string, err error) {
	p.m.Problems = append(p.m.Problems, &LineError{
		Section: p.section,
		Line:    p.line,
		Text:    text,
		Err:     err,
	})
}

// link parses "<a> <b> <cost>".
func (p *parser) link(text string, fields []string) {
	if len(fields) != 3 {
		p.problem(text, ErrMalformedLine)
		return
	}
	cost, err := strconv.ParseInt(fields[2], 10, 64)
	if err != nil || cost < 0 || cost > core.MaxCost {
		p.problem(text, ErrBadCost)
		return
	}
	p.m.Links = append(p.m.Links, core.Link{A: fields[0], B: fields[1], Cost: cost})
}

// departure parses "<flight> <gate> [<destination> [<time>]]". A destination
// of NoDestination is stored as empty.
func (p *parser) departure(text string, fields []string) {
	if len(fields) < 2 || len(fields) > 4 {
		p.problem(text, ErrMalformedLine)
		return
	}
	d := Departure{Flight: fields[0], Gate: fields[1]}
	if len(fields) > 2 && fields[2] != NoDestination {
		d.Destination = fields[2]
	}
	if len(fields) > 3 {
		d.Time = fields[3]
	}
	if _, dup := p.m.Departures[d.Flight]; dup {
		p.problem(text, ErrDuplicateFlight)
		return
	}
	p.m.Departures[d.Flight] = d
}

// bag parses "<id> <entry> <flight>".
func (p *parser) bag(text string, fields []string) {
	if len(fields) != 3 {
		p.problem(text, ErrMalformedLine)
		return
	}
	if _, dup := p.bagSeen[fields[0]]; dup {
		p.problem(text, ErrDuplicateBag)
		return
	}
	p.bagSeen[fields[0]] = struct{}{}
	p.m.Bags = append(p.m.Bags, Bag{ID: fields[0], Entry: fields[1], Flight: fields[2]})
}
