package exif

// gpsTags covers the GPS Info sub-IFD.
var gpsTags = map[uint16]tagInfo{
	0x0000: {"GPSVersionID", TypeByte},
	0x0001: {"GPSLatitudeRef", TypeAscii},
	0x0002: {"GPSLatitude", TypeRational},
	0x0003: {"GPSLongitudeRef", TypeAscii},
	0x0004: {"GPSLongitude", TypeRational},
	0x0005: {"GPSAltitudeRef", TypeByte},
	0x0006: {"GPSAltitude", TypeRational},
	0x0007: {"GPSTimeStamp", TypeRational},
	0x0008: {"GPSSatellites", TypeAscii},
	0x0009: {"GPSStatus", TypeAscii},
	0x000A: {"GPSMeasureMode", TypeAscii},
	0x000B: {"GPSDOP", TypeRational},
	0x000C: {"GPSSpeedRef", TypeAscii},
	0x000D: {"GPSSpeed", TypeRational},
	0x000E: {"GPSTrackRef", TypeAscii},
	0x000F: {"GPSTrack", TypeRational},
	0x0010: {"GPSImgDirectionRef", TypeAscii},
	0x0011: {"GPSImgDirection", TypeRational},
	0x0012: {"GPSMapDatum", TypeAscii},
	0x0013: {"GPSDestLatitudeRef", TypeAscii},
	0x0014: {"GPSDestLatitude", TypeRational},
	0x0015: {"GPSDestLongitudeRef", TypeAscii},
	0x0016: {"GPSDestLongitude", TypeRational},
	0x0017: {"GPSDestBearingRef", TypeAscii},
	0x0018: {"GPSDestBearing", TypeRational},
	0x0019: {"GPSDestDistanceRef", TypeAscii},
	0x001A: {"GPSDestDistance", TypeRational},
	0x001B: {"GPSProcessingMethod", TypeUndefined},
	0x001C: {"GPSAreaInformation", TypeUndefined},
	0x001D: {"GPSDateStamp", TypeAscii},
	0x001E: {"GPSDifferential", TypeShort},
	0x001F: {"GPSHPositioningError", TypeRational},
}

// iopTags covers the Interoperability sub-IFD.
var iopTags = map[uint16]tagInfo{
	0x0001: {"InteroperabilityIndex", TypeAscii},
	0x0002: {"InteroperabilityVersion", TypeUndefined},
	0x1000: {"RelatedImageFileFormat", TypeAscii},
	0x1001: {"RelatedImageWidth", TypeLong},
	0x1002: {"RelatedImageLength", TypeLong},
}
