package sac

import "fmt"

// Undefined is the SAC sentinel for unset integer header fields, including
// the coded enum fields below. The float and string sentinels are -12345.0
// and "-12345" blank padded to the field width.
const Undefined int32 = -12345

// FileType identifies the layout of the data section (header field iftype).
type FileType int32

const (
	TypeNone     FileType = FileType(Undefined)
	TypeTime     FileType = 1  // evenly or unevenly spaced time series
	TypeRealImag FileType = 2  // spectrum, real/imaginary pairs
	TypeAmpPhase FileType = 3  // spectrum, amplitude/phase pairs
	TypeXY       FileType = 4  // general x versus y data
	TypeXYZ      FileType = 51 // general three-dimensional grid
)

func (t FileType) String() string {
	switch t {
	case TypeNone:
		return "None"
	case TypeTime:
		return "Time"
	case TypeRealImag:
		return "RealImag"
	case TypeAmpPhase:
		return "AmpPhase"
	case TypeXY:
		return "XY"
	case TypeXYZ:
		return "XYZ"
	}
	return fmt.Sprintf("Unknown(%d)", int32(t))
}

// DataType identifies the physical quantity of the dependent variable
// (header field idep).
type DataType int32

const (
	DataNone         DataType = DataType(Undefined)
	DataDisplacement DataType = 6  // nanometers
	DataVelocity     DataType = 7  // nanometers/second
	DataAcceleration DataType = 8  // nanometers/second^2
	DataVolts        DataType = 50
)

func (t DataType) String() string {
	switch t {
	case DataNone:
		return "None"
	case DataDisplacement:
		return "Displacement"
	case DataVelocity:
		return "Velocity"
	case DataAcceleration:
		return "Acceleration"
	case DataVolts:
		return "Volts"
	}
	return fmt.Sprintf("Unknown(%d)", int32(t))
}

// ZeroTime identifies which time mark the reference time is equivalent to
// (header field iztype).
type ZeroTime int32

const (
	ZeroTimeNone  ZeroTime = ZeroTime(Undefined)
	ZeroTimeBegin ZeroTime = 9  // begin time b
	ZeroTimeDay   ZeroTime = 10 // midnight of the reference day
	ZeroTimeOrig  ZeroTime = 11 // event origin time o
	ZeroTimeFirst ZeroTime = 12 // first arrival a
	ZeroTimeT0    ZeroTime = 13
	ZeroTimeT1    ZeroTime = 14
	ZeroTimeT2    ZeroTime = 15
	ZeroTimeT3    ZeroTime = 16
	ZeroTimeT4    ZeroTime = 17
	ZeroTimeT5    ZeroTime = 18
	ZeroTimeT6    ZeroTime = 19
	ZeroTimeT7    ZeroTime = 20
	ZeroTimeT8    ZeroTime = 21
	ZeroTimeT9    ZeroTime = 22
)

func (t ZeroTime) String() string {
	switch t {
	case ZeroTimeNone:
		return "None"
	case ZeroTimeBegin:
		return "Begin"
	case ZeroTimeDay:
		return "Day"
	case ZeroTimeOrig:
		return "Origin"
	case ZeroTimeFirst:
		return "FirstArrival"
	}
	if t >= ZeroTimeT0 && t <= ZeroTimeT9 {
		return fmt.Sprintf("T%d", int32(t-ZeroTimeT0))
	}
	return fmt.Sprintf("Unknown(%d)", int32(t))
}

// EventType identifies the kind of seismic event (header field ievtyp).
type EventType int32

const (
	EventNone             EventType = EventType(Undefined)
	EventNuclear          EventType = 37
	EventNuclearPreShot   EventType = 38
	EventNuclearPostShot  EventType = 39
	EventEarthquake       EventType = 40
	EventForeshock        EventType = 41
	EventAftershock       EventType = 42
	EventChemicalExplosion EventType = 43
	EventOther            EventType = 44
	EventQuarry           EventType = 72
	EventQuarryBlast1     EventType = 73
	EventQuarryBlast2     EventType = 74
)

func (t EventType) String() string {
	switch t {
	case EventNone:
		return "None"
	case EventNuclear:
		return "Nuclear"
	case EventNuclearPreShot:
		return "NuclearPreShot"
	case EventNuclearPostShot:
		return "NuclearPostShot"
	case EventEarthquake:
		return "Earthquake"
	case EventForeshock:
		return "Foreshock"
	case EventAftershock:
		return "Aftershock"
	case EventChemicalExplosion:
		return "ChemicalExplosion"
	case EventOther:
		return "Other"
	case EventQuarry, EventQuarryBlast1, EventQuarryBlast2:
		return "Quarry"
	}
	return fmt.Sprintf("Unknown(%d)", int32(t))
}

// Quality describes the data quality flag (header field iqual).
type Quality int32

const (
	QualityNone    Quality = Quality(Undefined)
	QualityOther   Quality = 44
	QualityGood    Quality = 45
	QualityGlitches Quality = 46
	QualityDropouts Quality = 47
	QualityLowSNR  Quality = 48
)

func (q Quality) String() string {
	switch q {
	case QualityNone:
		return "None"
	case QualityOther:
		return "Other"
	case QualityGood:
		return "Good"
	case QualityGlitches:
		return "Glitches"
	case QualityDropouts:
		return "Dropouts"
	case QualityLowSNR:
		return "LowSNR"
	}
	return fmt.Sprintf("Unknown(%d)", int32(q))
}

// MagnitudeType identifies the magnitude scale (header field imagtyp).
type MagnitudeType int32

const (
	MagNone       MagnitudeType = MagnitudeType(Undefined)
	MagBody       MagnitudeType = 52 // mb
	MagSurface    MagnitudeType = 53 // ms
	MagLocal      MagnitudeType = 54 // ml
	MagMoment     MagnitudeType = 55 // mw
	MagDuration   MagnitudeType = 56 // md
	MagUserDefined MagnitudeType = 57 // mx
)

func (t MagnitudeType) String() string {
	switch t {
	case MagNone:
		return "None"
	case MagBody:
		return "Body"
	case MagSurface:
		return "Surface"
	case MagLocal:
		return "Local"
	case MagMoment:
		return "Moment"
	case MagDuration:
		return "Duration"
	case MagUserDefined:
		return "UserDefined"
	}
	return fmt.Sprintf("Unknown(%d)", int32(t))
}

// MagnitudeSource identifies the agency that determined the magnitude
// (header field imagsrc).
type MagnitudeSource int32

const (
	MagSrcNone     MagnitudeSource = MagnitudeSource(Undefined)
	MagSrcNEIC     MagnitudeSource = 58
	MagSrcPDE      MagnitudeSource = 61
	MagSrcISC      MagnitudeSource = 62
	MagSrcREB      MagnitudeSource = 63
	MagSrcUSGS     MagnitudeSource = 64
	MagSrcBerkeley MagnitudeSource = 65
	MagSrcCaltech  MagnitudeSource = 66
	MagSrcLLNL     MagnitudeSource = 67
	MagSrcEVLOC    MagnitudeSource = 68
	MagSrcJSOP     MagnitudeSource = 69
	MagSrcUser     MagnitudeSource = 70
	MagSrcUnknownAgency MagnitudeSource = 71
)

func (s MagnitudeSource) String() string {
	switch s {
	case MagSrcNone:
		return "None"
	case MagSrcNEIC:
		return "NEIC"
	case MagSrcPDE:
		return "PDE"
	case MagSrcISC:
		return "ISC"
	case MagSrcREB:
		return "REB"
	case MagSrcUSGS:
		return "USGS"
	case MagSrcBerkeley:
		return "Berkeley"
	case MagSrcCaltech:
		return "Caltech"
	case MagSrcLLNL:
		return "LLNL"
	case MagSrcEVLOC:
		return "EVLOC"
	case MagSrcJSOP:
		return "JSOP"
	case MagSrcUser:
		return "User"
	case MagSrcUnknownAgency:
		return "UnknownAgency"
	}
	return fmt.Sprintf("Unknown(%d)", int32(s))
}
