package sbs

// TransmissionType is the SBS message sub-type, field 2 of the record.
type TransmissionType int

const (
	TransmissionSelectionChange TransmissionType = 1
	TransmissionNewAircraft     TransmissionType = 2
	TransmissionNewID           TransmissionType = 3
	TransmissionNewCallsign     TransmissionType = 4
	TransmissionNewAltitude     TransmissionType = 5
	TransmissionNewGroundSpeed  TransmissionType = 6
	TransmissionNewTrack        TransmissionType = 7
	TransmissionNewLatLon       TransmissionType = 8
)

func validTransmissionType(n int) bool {
	return n >= 1 && n <= 8
}
