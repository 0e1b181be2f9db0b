package domain

// Entity is implemented by every stored resource.
type Entity interface {
	EntityID() int64
}

func (a Airport) EntityID() int64      { return a.ID }
func (r Route) EntityID() int64        { return r.ID }
func (t AirplaneType) EntityID() int64 { return t.ID }
func (a Airplane) EntityID() int64     { return a.ID }
func (f Flight) EntityID() int64       { return f.ID }
func (c Crew) EntityID() int64         { return c.ID }
func (o Order) EntityID() int64        { return o.ID }
func (t Ticket) EntityID() int64       { return t.ID }
