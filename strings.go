package sac

import "strings"

// StringField selects one of the string header fields. Location is an
// alias for Hole and Channel for Component, matching common usage.
type StringField int

const (
	Station StringField = iota
	EventName
	Hole
	Location
	OriginLabel
	ArrivalLabel
	LabelT0
	LabelT1
	LabelT2
	LabelT3
	LabelT4
	LabelT5
	LabelT6
	LabelT7
	LabelT8
	LabelT9
	EventEnd
	UserString0
	UserString1
	UserString2
	Component
	Channel
	Network
	DateRead
	Instrument
)

func (r *Record) stringField(key StringField) *string {
	switch key {
	case Station:
		return &r.Kstnm
	case EventName:
		return &r.Kevnm
	case Hole, Location:
		return &r.Khole
	case OriginLabel:
		return &r.Ko
	case ArrivalLabel:
		return &r.Ka
	case LabelT0:
		return &r.Kt0
	case LabelT1:
		return &r.Kt1
	case LabelT2:
		return &r.Kt2
	case LabelT3:
		return &r.Kt3
	case LabelT4:
		return &r.Kt4
	case LabelT5:
		return &r.Kt5
	case LabelT6:
		return &r.Kt6
	case LabelT7:
		return &r.Kt7
	case LabelT8:
		return &r.Kt8
	case LabelT9:
		return &r.Kt9
	case EventEnd:
		return &r.Kf
	case UserString0:
		return &r.Kuser0
	case UserString1:
		return &r.Kuser1
	case UserString2:
		return &r.Kuser2
	case Component, Channel:
		return &r.Kcmpnm
	case Network:
		return &r.Knetwk
	case DateRead:
		return &r.Kdatrd
	case Instrument:
		return &r.Kinst
	}
	return nil
}

// String returns the value of the selected string field, including its
// blank padding. Unknown keys return ErrBadKey.
func (r *Record) String(key StringField) (string, error) {
	p := r.stringField(key)
	if p == nil {
		return "", ErrBadKey
	}
	return *p, nil
}

// SetString sets the selected string field. The value is stored as given;
// padding and truncation to the field width happen on write.
func (r *Record) SetString(key StringField, value string) error {
	p := r.stringField(key)
	if p == nil {
		return ErrBadKey
	}
	*p = value
	return nil
}

// NSLC returns the network.station.location.channel code for the record,
// with undefined fields rendered as empty components.
func (r *Record) NSLC() string {
	keys := []StringField{Network, Station, Location, Channel}
	parts := make([]string, len(keys))
	for i, k := range keys {
		v := *r.stringField(k)
		if strings.TrimRight(v, " ") != sentinelText {
			parts[i] = strings.TrimSpace(v)
		}
	}
	return strings.Join(parts, ".")
}
