package timezone

import "time"

var Location *time.Location

func init() {
	var err error
	Location, err = time.LoadLocation("Europe/Zurich")
	if err != nil {
		panic(err)
	}
}

// swimrankings.net publishes meet dates in central european time,
// so capture timestamps are kept in the same zone to avoid off-by-one
// dates when servers run elsewhere.
func Now() time.Time {
	return time.Now().In(Location)
}
