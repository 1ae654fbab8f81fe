package tm1637

import "fmt"

// Wiring names the pins one display is attached to
type Wiring struct {
	Name string
	Clk  int
	Dio  int
}

// CheckWiring enforces the bus sharing rule. Data lines may be shared between
// displays because a chip only listens while its own clock moves, but a clock
// line must belong to exactly one display and must not double as anyone's
// data line.
func CheckWiring(displays []Wiring) error {
	clocks := make(map[int]string)
	datas := make(map[int]string)
	for _, w := range displays {
		if w.Clk == w.Dio {
			return fmt.Errorf("%s: clock and data on the same pin %d", w.Name, w.Clk)
		}
		if other, ok := clocks[w.Clk]; ok {
			return fmt.Errorf("%s: clock pin %d already clocks %s", w.Name, w.Clk, other)
		}
		clocks[w.Clk] = w.Name
		if _, ok := datas[w.Dio]; !ok {
			datas[w.Dio] = w.Name
		}
	}
	for pin, name := range clocks {
		if other, ok := datas[pin]; ok {
			return fmt.Errorf("%s: clock pin %d is the data pin of %s", name, pin, other)
		}
	}
	return nil
}
