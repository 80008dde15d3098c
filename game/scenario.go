package game

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

var ErrMissingMarker = errors.New("missing scenario marker")

// Scenario is a board with its starting layout.
type Scenario struct {
	Grid     *Grid
	Start    Position
	Goal     Position
	Pursuers [2]Position
}

// LoadScenario reads a scenario file, see ParseScenario.
func LoadScenario(path string) (*Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open scenario: %w", err)
	}
	defer f.Close()

	s, err := ParseScenario(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse scenario %s: %w", path, err)
	}
	return s, nil
}

// ParseScenario reads a text board: '.' free, '#' wall, 'S' evader start,
// 'G' goal, '1' and '2' the pursuers. Marker cells are FREE. Blank lines and
// lines starting with ';' are skipped. Connectivity is not checked.
func ParseScenario(r io.Reader) (*Scenario, error) {
	var rows [][]int
	markers := map[rune]Position{}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), " \t\r")
		if line == "" || strings.HasPrefix(line, ";") {
			continue
		}

		y := len(rows)
		row := make([]int, 0, len(line))
		for x, ch := range []rune(line) {
			switch ch {
			case '.':
				row = append(row, int(Free))
			case '#':
				row = append(row, int(Wall))
			case 'S', 'G', '1', '2':
				if prev, ok := markers[ch]; ok {
					return nil, fmt.Errorf("%w: marker %q at (%d,%d) already placed at %s", ErrMalformedGrid, ch, x, y, prev)
				}
				markers[ch] = Position{X: x, Y: y}
				row = append(row, int(Free))
			default:
				return nil, fmt.Errorf("%w: unexpected %q at (%d,%d)", ErrMalformedGrid, ch, x, y)
			}
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	grid, err := FromMatrix(rows)
	if err != nil {
		return nil, err
	}

	for _, ch := range "SG12" {
		if _, ok := markers[ch]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingMarker, ch)
		}
	}

	return &Scenario{
		Grid:     grid,
		Start:    markers['S'],
		Goal:     markers['G'],
		Pursuers: [2]Position{markers['1'], markers['2']},
	}, nil
}
