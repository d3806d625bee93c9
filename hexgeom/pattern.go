package hexgeom

// ParsePattern walks pattern from the origin heading startDir and returns
// the resulting Segment sequence. The first segment is emitted at the
// origin using startDir verbatim, with no character consumed; each
// subsequent character then advances the cursor to the previous segment's
// end and rotates the heading by that character's Angle before the next
// segment is emitted. A pattern of length N therefore yields N+1 segments,
// matching the seed literals in Path.Zero (see the "aqaa"/"dedd" seeds).
func ParsePattern(startDir Direction, pattern string) ([]Segment, error) {
	cursor := Origin()
	compass := startDir

	segments := make([]Segment, 0, len(pattern)+1)
	segments = append(segments, NewSegment(cursor, compass))

	for _, c := range pattern {
		cursor = cursor.AddDirection(compass)
		angle, err := AngleFromRune(c)
		if err != nil {
			return nil, err
		}
		compass = compass.Rotated(angle)
		segments = append(segments, NewSegment(cursor, compass))
	}

	return segments, nil
}
