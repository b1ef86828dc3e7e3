package metric

// Record holds one value per metric. Every field is always present; a failed
// extraction is stored as Unavailable rather than omitted.
type Record struct {
	Price         Value `json:"price"`
	PriceChange   Value `json:"priceChange"`
	Low24h        Value `json:"low24h"`
	High24h       Value `json:"high24h"`
	TradingVolume Value `json:"tradingVolume"`
	MarketCap     Value `json:"marketCap"`
	Dominance     Value `json:"dominance"`
	Rank          Value `json:"rank"`
}

// NewRecord returns a record with every metric set to its pre-parse default of 0.
func NewRecord() Record {
	zero := Of(0)
	return Record{
		Price:         zero,
		PriceChange:   zero,
		Low24h:        zero,
		High24h:       zero,
		TradingVolume: zero,
		MarketCap:     zero,
		Dominance:     zero,
		Rank:          zero,
	}
}

func (r *Record) field(m Metric) *Value {
	switch m {
	case Price:
		return &r.Price
	case PriceChange:
		return &r.PriceChange
	case Low24h:
		return &r.Low24h
	case High24h:
		return &r.High24h
	case TradingVolume:
		return &r.TradingVolume
	case MarketCap:
		return &r.MarketCap
	case Dominance:
		return &r.Dominance
	case Rank:
		return &r.Rank
	default:
		return nil
	}
}

// Get returns the value for m. Unknown metrics are Unavailable.
func (r Record) Get(m Metric) Value {
	if f := r.field(m); f != nil {
		return *f
	}
	return Unavailable
}

// Set stores v for m. Unknown metrics are ignored.
func (r *Record) Set(m Metric, v Value) {
	if f := r.field(m); f != nil {
		*f = v
	}
}
