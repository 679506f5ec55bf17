package events

import "github.com/atomicstack/retromenu/internal/logging"

type NavigationTracer struct{}

var Navigation = NavigationTracer{}

func (NavigationTracer) Selection(selection int) {
	logging.Trace("navigation.selection", map[string]interface{}{"selection": selection})
}

func (NavigationTracer) Wraparound(direction string, selection int) {
	logging.Trace("navigation.wraparound", map[string]interface{}{
		"direction": direction,
		"selection": selection,
	})
}

func (NavigationTracer) AlphabetJump(direction string, selection int) {
	logging.Trace("navigation.alphabet-jump", map[string]interface{}{
		"direction": direction,
		"selection": selection,
	})
}

func (NavigationTracer) IndexRebuilt(size, entries int) {
	logging.Trace("navigation.index-rebuilt", map[string]interface{}{
		"size":    size,
		"entries": entries,
	})
}
