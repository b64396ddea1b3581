package domain

// LinkSpec carries the constructor arguments for a link.
type LinkSpec struct {
	Name         string
	IsDirected   bool
	StartPointID int
	EndPointID   int
	Distance     float64
	Time         float64
	FixedCost    float64
}

// Link is an arc or edge of the routing graph. Links are keyed by name, and
// an undirected link serves travel in both directions.
type Link struct {
	name         string
	isDirected   bool
	startPointID int
	endPointID   int
	distance     float64
	time         float64
	fixedCost    float64
}

func NewLink(spec LinkSpec) (*Link, error) {
	l := &Link{}
	if err := l.SetStartPointID(spec.StartPointID); err != nil {
		return nil, err
	}
	if err := l.SetEndPointID(spec.EndPointID); err != nil {
		return nil, err
	}
	if err := l.SetDistance(spec.Distance); err != nil {
		return nil, err
	}
	if err := l.SetTime(spec.Time); err != nil {
		return nil, err
	}
	l.SetName(spec.Name)
	l.SetIsDirected(spec.IsDirected)
	l.SetFixedCost(spec.FixedCost)
	return l, nil
}

func (l *Link) Name() string       { return l.name }
func (l *Link) IsDirected() bool   { return l.isDirected }
func (l *Link) StartPointID() int  { return l.startPointID }
func (l *Link) EndPointID() int    { return l.endPointID }
func (l *Link) Distance() float64  { return l.distance }
func (l *Link) Time() float64      { return l.time }
func (l *Link) FixedCost() float64 { return l.fixedCost }

func (l *Link) SetStartPointID(id int) error {
	if id < 0 {
		return errNonNegative(wireStartPointID)
	}
	l.startPointID = id
	return nil
}

func (l *Link) SetEndPointID(id int) error {
	if id < 0 {
		return errNonNegative(wireEndPointID)
	}
	l.endPointID = id
	return nil
}

func (l *Link) SetDistance(d float64) error {
	if d < 0 {
		return errNonNegative(wireDistance)
	}
	l.distance = d
	return nil
}

func (l *Link) SetTime(t float64) error {
	if t < 0 {
		return errNonNegative(wireTime)
	}
	l.time = t
	return nil
}

func (l *Link) SetName(name string)       { l.name = name }
func (l *Link) SetIsDirected(d bool)      { l.isDirected = d }
func (l *Link) SetFixedCost(cost float64) { l.fixedCost = cost }

// Encode returns the wire fields of the link, omitting fields equal to
// their defaults unless debug requests the full set.
func (l *Link) Encode(debug bool) map[string]any {
	doc := map[string]any{
		wireStartPointID: l.startPointID,
		wireEndPointID:   l.endPointID,
	}
	if l.name != "" || debug {
		doc[wireName] = l.name
	}
	if l.isDirected || debug {
		doc[wireIsDirected] = l.isDirected
	}
	if l.distance != 0 || debug {
		doc[wireDistance] = l.distance
	}
	if l.time != 0 || debug {
		doc[wireTime] = l.time
	}
	if l.fixedCost != 0 || debug {
		doc[wireFixedCost] = l.fixedCost
	}
	return doc
}
