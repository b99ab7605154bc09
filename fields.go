package sac

import "strings"

// The header layout is declared once, as ordered field tables. The codec,
// the sentinel initialization in New and the comparison below all walk the
// same tables, so the file order can never drift between them.

const (
	stringWidth    = 8  // width of every string field except the event name
	eventNameWidth = 16 // width of the kevnm field
	sentinelText   = "-12345"

	// floatTolerance is the comparison tolerance used by Equal. Header
	// floats survive a round trip exactly; the tolerance absorbs the
	// single-precision noise of computed fields.
	floatTolerance = 1e-5
)

// undefString returns the string sentinel blank padded to the field width.
func undefString(width int) string {
	return sentinelText + strings.Repeat(" ", width-len(sentinelText))
}

// floatFields returns the 70 float header fields in file order.
func (h *Header) floatFields() []*float32 {
	return []*float32{
		&h.Delta, &h.Depmin, &h.Depmax, &h.Scale, &h.Odelta,
		&h.B, &h.E, &h.O, &h.A, &h.fmt,
		&h.T0, &h.T1, &h.T2, &h.T3, &h.T4,
		&h.T5, &h.T6, &h.T7, &h.T8, &h.T9,
		&h.F,
		&h.Resp0, &h.Resp1, &h.Resp2, &h.Resp3, &h.Resp4,
		&h.Resp5, &h.Resp6, &h.Resp7, &h.Resp8, &h.Resp9,
		&h.Stla, &h.Stlo, &h.Stel, &h.Stdp,
		&h.Evla, &h.Evlo, &h.Evel, &h.Evdp, &h.Mag,
		&h.User0, &h.User1, &h.User2, &h.User3, &h.User4,
		&h.User5, &h.User6, &h.User7, &h.User8, &h.User9,
		&h.Dist, &h.Az, &h.Baz, &h.Gcarc,
		&h.Sb, &h.Sdelta,
		&h.Depmen, &h.Cmpaz, &h.Cmpinc,
		&h.Xminimum, &h.Xmaximum, &h.Yminimum, &h.Ymaximum,
		&h.unused6, &h.unused7, &h.unused8, &h.unused9,
		&h.unused10, &h.unused11, &h.unused12,
	}
}

// intFields returns the 40 integer header fields in file order.
func (h *Header) intFields() []*int32 {
	return []*int32{
		&h.Nzyear, &h.Nzjday, &h.Nzhour, &h.Nzmin, &h.Nzsec, &h.Nzmsec,
		&h.Nvhdr, &h.Norid, &h.Nevid, &h.Npts, &h.Nsnpts, &h.Nwfid,
		&h.Nxsize, &h.Nysize, &h.unused15,
		&h.Iftype, &h.Idep, &h.Iztype, &h.unused16,
		&h.Iinst, &h.Istreg, &h.Ievreg, &h.Ievtyp,
		&h.Iqual, &h.Isynth, &h.Imagtyp, &h.Imagsrc,
		&h.unused19, &h.unused20, &h.unused21, &h.unused22,
		&h.unused23, &h.unused24, &h.unused25, &h.unused26,
		&h.Leven, &h.Lpspol, &h.Lovrok, &h.Lcalda, &h.unused27,
	}
}

type stringField struct {
	name  string
	p     *string
	width int
}

// stringFields returns the 23 string header fields in file order with
// their byte widths.
func (h *Header) stringFields() []stringField {
	return []stringField{
		{"kstnm", &h.Kstnm, stringWidth},
		{"kevnm", &h.Kevnm, eventNameWidth},
		{"khole", &h.Khole, stringWidth},
		{"ko", &h.Ko, stringWidth},
		{"ka", &h.Ka, stringWidth},
		{"kt0", &h.Kt0, stringWidth},
		{"kt1", &h.Kt1, stringWidth},
		{"kt2", &h.Kt2, stringWidth},
		{"kt3", &h.Kt3, stringWidth},
		{"kt4", &h.Kt4, stringWidth},
		{"kt5", &h.Kt5, stringWidth},
		{"kt6", &h.Kt6, stringWidth},
		{"kt7", &h.Kt7, stringWidth},
		{"kt8", &h.Kt8, stringWidth},
		{"kt9", &h.Kt9, stringWidth},
		{"kf", &h.Kf, stringWidth},
		{"kuser0", &h.Kuser0, stringWidth},
		{"kuser1", &h.Kuser1, stringWidth},
		{"kuser2", &h.Kuser2, stringWidth},
		{"kcmpnm", &h.Kcmpnm, stringWidth},
		{"knetwk", &h.Knetwk, stringWidth},
		{"kdatrd", &h.Kdatrd, stringWidth},
		{"kinst", &h.Kinst, stringWidth},
	}
}

func closeEnough(a, b float32) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= floatTolerance
}

func closeSlices(a, b []float32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !closeEnough(a[i], b[i]) {
			return false
		}
	}
	return true
}

// Equal reports whether two records match: integer and string header
// fields exactly, float header fields and sample data within a small
// absolute tolerance.
func (r *Record) Equal(o *Record) bool {
	af, bf := r.floatFields(), o.floatFields()
	for i := range af {
		if !closeEnough(*af[i], *bf[i]) {
			return false
		}
	}
	ai, bi := r.intFields(), o.intFields()
	for i := range ai {
		if *ai[i] != *bi[i] {
			return false
		}
	}
	as, bs := r.stringFields(), o.stringFields()
	for i := range as {
		if *as[i].p != *bs[i].p {
			return false
		}
	}
	return closeSlices(r.Y, o.Y) && closeSlices(r.X, o.X)
}
