package konbini

import "github.com/tliron/commonlog"

var log = commonlog.GetLogger("konbini")

// Trace returns a Parser that logs, at debug level,
// each time p is entered and how it finished.
// Nothing is logged unless the host program configures
// a commonlog backend.
func Trace[T, V any](name string, p Parser[T, V]) Parser[T, V] {
	return func(c Cursor[T]) Result[T, V] {
		log.Debugf("%s: enter at %d", name, c.pos)
		r := p(c)
		switch {
		case r.ok:
			log.Debugf("%s: ok at %d, next %d", name, c.pos, r.Next.pos)
		case r.Consumed:
			log.Debugf("%s: failed at %d after consuming input: %s", name, c.pos, r.Diag)
		default:
			log.Debugf("%s: failed at %d: %s", name, c.pos, r.Diag)
		}
		return r
	}
}
