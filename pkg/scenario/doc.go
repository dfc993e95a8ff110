// Package scenario loads branding inputs from TOML files.
//
// A scenario holds the transaction's program/brand sequence, the options
// that steer the branding run, and one or more itineraries described by
// their segments and fare markets:
//
//	[options]
//	space_limit = 4
//	directionality = true
//
//	[[programs]]
//	program = "US"
//	brands = ["BASIC", "MAIN", "FLEX"]
//
//	[[itineraries]]
//	id = "DFW-LHR"
//	fixed_legs = [false, false]
//
//	  [[itineraries.segments]]
//	  leg = 0
//	  from = "DFW"
//	  to = "LHR"
//
//	  [[itineraries.fare_markets]]
//	  id = "FM1"
//	  carrier = "AA"
//	  start = 0
//	  end = 0
//	  brands = [{ code = "MAIN", program = "US", cabin = "economy" }]
//
// Every loaded [Itinerary] implements the branding geometry. Fare market
// brands are reduced to the brands the transaction qualified (those listed
// under programs) and to the itinerary's own brand filter when it has one.
package scenario
