package graphic

import "weak"

// Subject is implemented by every primitive whose changes other primitives
// can depend on: Point, Line, Circle, Arc, Arrow, ArcArrow and Text.
type Subject interface {
	// Subscribe registers fn to run synchronously after every change.
	// The returned Subscription must be kept by the caller: the Subject
	// only holds it weakly, so a dropped Subscription stops firing once
	// it has been garbage collected.
	Subscribe(fn func()) *Subscription

	// Dependents returns the number of live subscriptions.
	Dependents() int
}

// Subscription is the observation link between a dependent and a Subject.
// The dependent owns it; the Subject only observes it.
type Subscription struct {
	fn        func()
	subject   *notifier
	cancelled bool
}

// Cancel detaches the subscription. It is safe to call more than once.
func (s *Subscription) Cancel() {
	if s == nil || s.cancelled {
		return
	}
	s.cancelled = true
	s.subject.remove(s)
}

// Active reports whether the subscription still fires.
func (s *Subscription) Active() bool {
	return s != nil && !s.cancelled
}

// notifier is embedded by every Subject. The zero value is ready to use.
type notifier struct {
	subs []weak.Pointer[Subscription]
}

// Subscribe implements Subject.
func (n *notifier) Subscribe(fn func()) *Subscription {
	s := &Subscription{fn: fn, subject: n}
	n.subs = append(n.subs, weak.Make(s))
	return s
}

// Dependents implements Subject.
func (n *notifier) Dependents() int {
	n.prune()
	return len(n.subs)
}

func (n *notifier) remove(s *Subscription) {
	for i, wp := range n.subs {
		if wp.Value() == s {
			n.subs = append(n.subs[:i], n.subs[i+1:]...)
			return
		}
	}
}

// prune drops subscriptions that were cancelled or collected.
func (n *notifier) prune() {
	kept := n.subs[:0]
	for _, wp := range n.subs {
		if s := wp.Value(); s != nil && !s.cancelled {
			kept = append(kept, wp)
		}
	}
	if dropped := len(n.subs) - len(kept); dropped > 0 {
		Logger().Debug("graphic: pruned subscriptions", "dropped", dropped)
	}
	clear(n.subs[len(kept):])
	n.subs = kept
}

// notify runs every live subscription in registration order.
// Callbacks may subscribe or cancel while notify runs; subscriptions added
// during the pass first fire on the next change.
func (n *notifier) notify() {
	n.prune()
	if len(n.subs) == 0 {
		return
	}
	live := make([]*Subscription, 0, len(n.subs))
	for _, wp := range n.subs {
		if s := wp.Value(); s != nil {
			live = append(live, s)
		}
	}
	for _, s := range live {
		if !s.cancelled {
			s.fn()
		}
	}
}

// Notifier lets types outside this package act as a Subject. Embed it and
// call Notify after every change. The zero value is ready to use.
type Notifier struct {
	notifier
}

// Notify runs every live subscription in registration order.
func (n *Notifier) Notify() { n.notify() }
