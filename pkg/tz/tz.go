package tz

import "time"

// Vienna is the Europe/Vienna location (CET/CEST with automatic DST).
var Vienna *time.Location

func init() {
	var err error
	Vienna, err = time.LoadLocation("Europe/Vienna")
	if err != nil {
		panic("tz: load Europe/Vienna: " + err.Error())
	}
}
