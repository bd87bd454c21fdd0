package exif

// photoTags covers the Exif private sub-IFD.
var photoTags = map[uint16]tagInfo{
	0x829A: {"ExposureTime", TypeRational},
	0x829D: {"FNumber", TypeRational},
	0x8822: {"ExposureProgram", TypeShort},
	0x8824: {"SpectralSensitivity", TypeAscii},
	0x8827: {"ISOSpeedRatings", TypeShort},
	0x8828: {"OECF", TypeUndefined},
	0x8830: {"SensitivityType", TypeShort},
	0x8831: {"StandardOutputSensitivity", TypeLong},
	0x8832: {"RecommendedExposureIndex", TypeLong},
	0x8833: {"ISOSpeed", TypeLong},
	0x8834: {"ISOSpeedLatitudeyyy", TypeLong},
	0x8835: {"ISOSpeedLatitudezzz", TypeLong},
	0x9000: {"ExifVersion", TypeUndefined},
	0x9003: {"DateTimeOriginal", TypeAscii},
	0x9004: {"DateTimeDigitized", TypeAscii},
	0x9010: {"OffsetTime", TypeAscii},
	0x9011: {"OffsetTimeOriginal", TypeAscii},
	0x9012: {"OffsetTimeDigitized", TypeAscii},
	0x9101: {"ComponentsConfiguration", TypeUndefined},
	0x9102: {"CompressedBitsPerPixel", TypeRational},
	0x9201: {"ShutterSpeedValue", TypeSRational},
	0x9202: {"ApertureValue", TypeRational},
	0x9203: {"BrightnessValue", TypeSRational},
	0x9204: {"ExposureBiasValue", TypeSRational},
	0x9205: {"MaxApertureValue", TypeRational},
	0x9206: {"SubjectDistance", TypeRational},
	0x9207: {"MeteringMode", TypeShort},
	0x9208: {"LightSource", TypeShort},
	0x9209: {"Flash", TypeShort},
	0x920A: {"FocalLength", TypeRational},
	0x9214: {"SubjectArea", TypeShort},
	0x927C: {"MakerNote", TypeUndefined},
	0x9286: {"UserComment", TypeUndefined},
	0x9290: {"SubSecTime", TypeAscii},
	0x9291: {"SubSecTimeOriginal", TypeAscii},
	0x9292: {"SubSecTimeDigitized", TypeAscii},
	0x9400: {"Temperature", TypeSRational},
	0x9401: {"Humidity", TypeRational},
	0x9402: {"Pressure", TypeRational},
	0x9403: {"WaterDepth", TypeSRational},
	0x9404: {"Acceleration", TypeRational},
	0x9405: {"CameraElevationAngle", TypeSRational},
	0xA000: {"FlashpixVersion", TypeUndefined},
	0xA001: {"ColorSpace", TypeShort},
	0xA002: {"PixelXDimension", TypeLong},
	0xA003: {"PixelYDimension", TypeLong},
	0xA004: {"RelatedSoundFile", TypeAscii},
	0xA005: {"InteroperabilityTag", TypeLong},
	0xA20B: {"FlashEnergy", TypeRational},
	0xA20C: {"SpatialFrequencyResponse", TypeUndefined},
	0xA20E: {"FocalPlaneXResolution", TypeRational},
	0xA20F: {"FocalPlaneYResolution", TypeRational},
	0xA210: {"FocalPlaneResolutionUnit", TypeShort},
	0xA214: {"SubjectLocation", TypeShort},
	0xA215: {"ExposureIndex", TypeRational},
	0xA217: {"SensingMethod", TypeShort},
	0xA300: {"FileSource", TypeUndefined},
	0xA301: {"SceneType", TypeUndefined},
	0xA302: {"CFAPattern", TypeUndefined},
	0xA401: {"CustomRendered", TypeShort},
	0xA402: {"ExposureMode", TypeShort},
	0xA403: {"WhiteBalance", TypeShort},
	0xA404: {"DigitalZoomRatio", TypeRational},
	0xA405: {"FocalLengthIn35mmFilm", TypeShort},
	0xA406: {"SceneCaptureType", TypeShort},
	0xA407: {"GainControl", TypeShort},
	0xA408: {"Contrast", TypeShort},
	0xA409: {"Saturation", TypeShort},
	0xA40A: {"Sharpness", TypeShort},
	0xA40B: {"DeviceSettingDescription", TypeUndefined},
	0xA40C: {"SubjectDistanceRange", TypeShort},
	0xA420: {"ImageUniqueID", TypeAscii},
	0xA430: {"CameraOwnerName", TypeAscii},
	0xA431: {"BodySerialNumber", TypeAscii},
	0xA432: {"LensSpecification", TypeRational},
	0xA433: {"LensMake", TypeAscii},
	0xA434: {"LensModel", TypeAscii},
	0xA435: {"LensSerialNumber", TypeAscii},
	0xA460: {"CompositeImage", TypeShort},
	0xA461: {"SourceImageNumberOfCompositeImage", TypeShort},
	0xA462: {"SourceExposureTimesOfCompositeImage", TypeUndefined},
	0xA500: {"Gamma", TypeRational},
}
