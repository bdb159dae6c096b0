package events

// Filter returns the events of evs whose type is one of types, keeping their order.
func Filter(evs []Event, types ...Type) []Event {
	out := make([]Event, 0, len(evs))
	for _, e := range evs {
		for _, t := range types {
			if e.Type == t {
				out = append(out, e)
				break
			}
		}
	}
	return out
}
