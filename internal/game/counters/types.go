package counters

// Counter names the simulator manipulates directly. Boost counters beyond
// +1/+1 are built with BoostName as needed.
const (
	NameP1P1    = "+1/+1"
	NameM1M1    = "-1/-1"
	NameCharge  = "charge"
	NameLoyalty = "loyalty"
)
