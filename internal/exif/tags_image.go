package exif

// imageTags covers IFD0 (and IFD1) tags: the TIFF 6.0 baseline, the EXIF and
// GPS pointer tags, and the DNG extensions, keyed by tag ID.
var imageTags = map[uint16]tagInfo{
	0x000B: {"ProcessingSoftware", TypeAscii},
	0x00FE: {"NewSubfileType", TypeLong},
	0x00FF: {"SubfileType", TypeShort},
	0x0100: {"ImageWidth", TypeLong},
	0x0101: {"ImageLength", TypeLong},
	0x0102: {"BitsPerSample", TypeShort},
	0x0103: {"Compression", TypeShort},
	0x0106: {"PhotometricInterpretation", TypeShort},
	0x0107: {"Thresholding", TypeShort},
	0x0108: {"CellWidth", TypeShort},
	0x0109: {"CellLength", TypeShort},
	0x010A: {"FillOrder", TypeShort},
	0x010D: {"DocumentName", TypeAscii},
	0x010E: {"ImageDescription", TypeAscii},
	0x010F: {"Make", TypeAscii},
	0x0110: {"Model", TypeAscii},
	0x0111: {"StripOffsets", TypeLong},
	0x0112: {"Orientation", TypeShort},
	0x0115: {"SamplesPerPixel", TypeShort},
	0x0116: {"RowsPerStrip", TypeLong},
	0x0117: {"StripByteCounts", TypeLong},
	0x011A: {"XResolution", TypeRational},
	0x011B: {"YResolution", TypeRational},
	0x011C: {"PlanarConfiguration", TypeShort},
	0x011D: {"PageName", TypeAscii},
	0x011E: {"XPosition", TypeRational},
	0x011F: {"YPosition", TypeRational},
	0x0122: {"GrayResponseUnit", TypeShort},
	0x0123: {"GrayResponseCurve", TypeShort},
	0x0124: {"T4Options", TypeLong},
	0x0125: {"T6Options", TypeLong},
	0x0128: {"ResolutionUnit", TypeShort},
	0x0129: {"PageNumber", TypeShort},
	0x012D: {"TransferFunction", TypeShort},
	0x0131: {"Software", TypeAscii},
	0x0132: {"DateTime", TypeAscii},
	0x013B: {"Artist", TypeAscii},
	0x013C: {"HostComputer", TypeAscii},
	0x013D: {"Predictor", TypeShort},
	0x013E: {"WhitePoint", TypeRational},
	0x013F: {"PrimaryChromaticities", TypeRational},
	0x0140: {"ColorMap", TypeShort},
	0x0141: {"HalftoneHints", TypeShort},
	0x0142: {"TileWidth", TypeLong},
	0x0143: {"TileLength", TypeLong},
	0x0144: {"TileOffsets", TypeShort},
	0x0145: {"TileByteCounts", TypeLong},
	0x014A: {"SubIFDs", TypeLong},
	0x014C: {"InkSet", TypeShort},
	0x014D: {"InkNames", TypeAscii},
	0x014E: {"NumberOfInks", TypeShort},
	0x0150: {"DotRange", TypeByte},
	0x0151: {"TargetPrinter", TypeAscii},
	0x0152: {"ExtraSamples", TypeShort},
	0x0153: {"SampleFormat", TypeShort},
	0x0154: {"SMinSampleValue", TypeShort},
	0x0155: {"SMaxSampleValue", TypeShort},
	0x0156: {"TransferRange", TypeShort},
	0x0157: {"ClipPath", TypeByte},
	0x0158: {"XClipPathUnits", TypeSShort},
	0x0159: {"YClipPathUnits", TypeSShort},
	0x015A: {"Indexed", TypeShort},
	0x015B: {"JPEGTables", TypeUndefined},
	0x015F: {"OPIProxy", TypeShort},
	0x0200: {"JPEGProc", TypeLong},
	0x0201: {"JPEGInterchangeFormat", TypeLong},
	0x0202: {"JPEGInterchangeFormatLength", TypeLong},
	0x0203: {"JPEGRestartInterval", TypeShort},
	0x0205: {"JPEGLosslessPredictors", TypeShort},
	0x0206: {"JPEGPointTransforms", TypeShort},
	0x0207: {"JPEGQTables", TypeLong},
	0x0208: {"JPEGDCTables", TypeLong},
	0x0209: {"JPEGACTables", TypeLong},
	0x0211: {"YCbCrCoefficients", TypeRational},
	0x0212: {"YCbCrSubSampling", TypeShort},
	0x0213: {"YCbCrPositioning", TypeShort},
	0x0214: {"ReferenceBlackWhite", TypeRational},
	0x02BC: {"XMLPacket", TypeByte},
	0x4746: {"Rating", TypeShort},
	0x4749: {"RatingPercent", TypeShort},
	0x7032: {"VignettingCorrParams", TypeSShort},
	0x7035: {"ChromaticAberrationCorrParams", TypeSShort},
	0x7037: {"DistortionCorrParams", TypeSShort},
	0x800D: {"ImageID", TypeAscii},
	0x828D: {"CFARepeatPatternDim", TypeShort},
	0x828E: {"CFAPattern", TypeByte},
	0x828F: {"BatteryLevel", TypeRational},
	0x8298: {"Copyright", TypeAscii},
	0x829A: {"ExposureTime", TypeRational},
	0x829D: {"FNumber", TypeRational},
	0x83BB: {"IPTCNAA", TypeLong},
	0x8649: {"ImageResources", TypeByte},
	0x8769: {"ExifTag", TypeLong},
	0x8773: {"InterColorProfile", TypeUndefined},
	0x8822: {"ExposureProgram", TypeShort},
	0x8824: {"SpectralSensitivity", TypeAscii},
	0x8825: {"GPSTag", TypeLong},
	0x8827: {"ISOSpeedRatings", TypeShort},
	0x8828: {"OECF", TypeUndefined},
	0x8829: {"Interlace", TypeShort},
	0x882A: {"TimeZoneOffset", TypeSShort},
	0x882B: {"SelfTimerMode", TypeShort},
	0x9003: {"DateTimeOriginal", TypeAscii},
	0x9102: {"CompressedBitsPerPixel", TypeRational},
	0x9201: {"ShutterSpeedValue", TypeSRational},
	0x9202: {"ApertureValue", TypeRational},
	0x9203: {"BrightnessValue", TypeSRational},
	0x9204: {"ExposureBiasValue", TypeSRational},
	0x9205: {"MaxApertureValue", TypeRational},
	0x9206: {"SubjectDistance", TypeSRational},
	0x9207: {"MeteringMode", TypeShort},
	0x9208: {"LightSource", TypeShort},
	0x9209: {"Flash", TypeShort},
	0x920A: {"FocalLength", TypeRational},
	0x920B: {"FlashEnergy", TypeRational},
	0x920C: {"SpatialFrequencyResponse", TypeUndefined},
	0x920D: {"Noise", TypeUndefined},
	0x920E: {"FocalPlaneXResolution", TypeRational},
	0x920F: {"FocalPlaneYResolution", TypeRational},
	0x9210: {"FocalPlaneResolutionUnit", TypeShort},
	0x9211: {"ImageNumber", TypeLong},
	0x9212: {"SecurityClassification", TypeAscii},
	0x9213: {"ImageHistory", TypeAscii},
	0x9214: {"SubjectLocation", TypeShort},
	0x9215: {"ExposureIndex", TypeRational},
	0x9216: {"TIFFEPStandardID", TypeByte},
	0x9217: {"SensingMethod", TypeShort},
	0x9C9B: {"XPTitle", TypeByte},
	0x9C9C: {"XPComment", TypeByte},
	0x9C9D: {"XPAuthor", TypeByte},
	0x9C9E: {"XPKeywords", TypeByte},
	0x9C9F: {"XPSubject", TypeByte},
	0xC4A5: {"PrintImageMatching", TypeUndefined},
	0xC612: {"DNGVersion", TypeByte},
	0xC613: {"DNGBackwardVersion", TypeByte},
	0xC614: {"UniqueCameraModel", TypeAscii},
	0xC615: {"LocalizedCameraModel", TypeByte},
	0xC616: {"CFAPlaneColor", TypeByte},
	0xC617: {"CFALayout", TypeShort},
	0xC618: {"LinearizationTable", TypeShort},
	0xC619: {"BlackLevelRepeatDim", TypeShort},
	0xC61A: {"BlackLevel", TypeRational},
	0xC61B: {"BlackLevelDeltaH", TypeSRational},
	0xC61C: {"BlackLevelDeltaV", TypeSRational},
	0xC61D: {"WhiteLevel", TypeLong},
	0xC61E: {"DefaultScale", TypeRational},
	0xC61F: {"DefaultCropOrigin", TypeLong},
	0xC620: {"DefaultCropSize", TypeLong},
	0xC621: {"ColorMatrix1", TypeSRational},
	0xC622: {"ColorMatrix2", TypeSRational},
	0xC623: {"CameraCalibration1", TypeSRational},
	0xC624: {"CameraCalibration2", TypeSRational},
	0xC625: {"ReductionMatrix1", TypeSRational},
	0xC626: {"ReductionMatrix2", TypeSRational},
	0xC627: {"AnalogBalance", TypeRational},
	0xC628: {"AsShotNeutral", TypeShort},
	0xC629: {"AsShotWhiteXY", TypeRational},
	0xC62A: {"BaselineExposure", TypeSRational},
	0xC62B: {"BaselineNoise", TypeRational},
	0xC62C: {"BaselineSharpness", TypeRational},
	0xC62D: {"BayerGreenSplit", TypeLong},
	0xC62E: {"LinearResponseLimit", TypeRational},
	0xC62F: {"CameraSerialNumber", TypeAscii},
	0xC630: {"LensInfo", TypeRational},
	0xC631: {"ChromaBlurRadius", TypeRational},
	0xC632: {"AntiAliasStrength", TypeRational},
	0xC633: {"ShadowScale", TypeSRational},
	0xC634: {"DNGPrivateData", TypeByte},
	0xC635: {"MakerNoteSafety", TypeShort},
	0xC65A: {"CalibrationIlluminant1", TypeShort},
	0xC65B: {"CalibrationIlluminant2", TypeShort},
	0xC65C: {"BestQualityScale", TypeRational},
	0xC65D: {"RawDataUniqueID", TypeByte},
	0xC68B: {"OriginalRawFileName", TypeByte},
	0xC68C: {"OriginalRawFileData", TypeUndefined},
	0xC68D: {"ActiveArea", TypeLong},
	0xC68E: {"MaskedAreas", TypeLong},
	0xC68F: {"AsShotICCProfile", TypeUndefined},
	0xC690: {"AsShotPreProfileMatrix", TypeSRational},
	0xC691: {"CurrentICCProfile", TypeUndefined},
	0xC692: {"CurrentPreProfileMatrix", TypeSRational},
	0xC6BF: {"ColorimetricReference", TypeShort},
	0xC6F3: {"CameraCalibrationSignature", TypeByte},
	0xC6F4: {"ProfileCalibrationSignature", TypeByte},
	0xC6F5: {"ExtraCameraProfiles", TypeLong},
	0xC6F6: {"AsShotProfileName", TypeByte},
	0xC6F7: {"NoiseReductionApplied", TypeRational},
	0xC6F8: {"ProfileName", TypeByte},
	0xC6F9: {"ProfileHueSatMapDims", TypeLong},
	0xC6FA: {"ProfileHueSatMapData1", TypeFloat},
	0xC6FB: {"ProfileHueSatMapData2", TypeFloat},
	0xC6FC: {"ProfileToneCurve", TypeFloat},
	0xC6FD: {"ProfileEmbedPolicy", TypeLong},
	0xC6FE: {"ProfileCopyright", TypeByte},
	0xC714: {"ForwardMatrix1", TypeSRational},
	0xC715: {"ForwardMatrix2", TypeSRational},
	0xC716: {"PreviewApplicationName", TypeByte},
	0xC717: {"PreviewApplicationVersion", TypeByte},
	0xC718: {"PreviewSettingsName", TypeByte},
	0xC719: {"PreviewSettingsDigest", TypeByte},
	0xC71A: {"PreviewColorSpace", TypeLong},
	0xC71B: {"PreviewDateTime", TypeAscii},
	0xC71C: {"RawImageDigest", TypeUndefined},
	0xC71D: {"OriginalRawFileDigest", TypeUndefined},
	0xC71E: {"SubTileBlockSize", TypeLong},
	0xC71F: {"RowInterleaveFactor", TypeLong},
	0xC725: {"ProfileLookTableDims", TypeLong},
	0xC726: {"ProfileLookTableData", TypeFloat},
	0xC740: {"OpcodeList1", TypeUndefined},
	0xC741: {"OpcodeList2", TypeUndefined},
	0xC74E: {"OpcodeList3", TypeUndefined},
	0xC761: {"NoiseProfile", TypeDouble},
	0xC763: {"TimeCodes", TypeByte},
	0xC764: {"FrameRate", TypeSRational},
	0xC772: {"TStop", TypeSRational},
	0xC789: {"ReelName", TypeAscii},
	0xC7A1: {"CameraLabel", TypeAscii},
	0xC791: {"OriginalDefaultFinalSize", TypeLong},
	0xC792: {"OriginalBestQualityFinalSize", TypeLong},
	0xC793: {"OriginalDefaultCropSize", TypeLong},
	0xC7A3: {"ProfileHueSatMapEncoding", TypeLong},
	0xC7A4: {"ProfileLookTableEncoding", TypeLong},
	0xC7A5: {"BaselineExposureOffset", TypeSRational},
	0xC7A6: {"DefaultBlackRender", TypeLong},
	0xC7A7: {"NewRawImageDigest", TypeByte},
	0xC7A8: {"RawToPreviewGain", TypeDouble},
	0xC7B5: {"DefaultUserCrop", TypeRational},
	0xC7E9: {"DepthFormat", TypeShort},
	0xC7EA: {"DepthNear", TypeRational},
	0xC7EB: {"DepthFar", TypeRational},
	0xC7EC: {"DepthUnits", TypeShort},
	0xC7ED: {"DepthMeasureType", TypeShort},
	0xC7EE: {"EnhanceParams", TypeAscii},
	0xCD2D: {"ProfileGainTableMap", TypeUndefined},
	0xCD2E: {"SemanticName", TypeAscii},
	0xCD30: {"SemanticInstanceID", TypeAscii},
	0xCD31: {"CalibrationIlluminant3", TypeShort},
	0xCD32: {"CameraCalibration3", TypeSRational},
	0xCD33: {"ColorMatrix3", TypeSRational},
	0xCD34: {"ForwardMatrix3", TypeSRational},
	0xCD35: {"IlluminantData1", TypeUndefined},
	0xCD36: {"IlluminantData2", TypeUndefined},
	0xCD37: {"IlluminantData3", TypeUndefined},
	0xCD38: {"MaskSubArea", TypeLong},
	0xCD39: {"ProfileHueSatMapData3", TypeFloat},
	0xCD3A: {"ReductionMatrix3", TypeSRational},
	0xCD3B: {"RGBTables", TypeUndefined},
	0xCD40: {"ProfileGainTableMap2", TypeUndefined},
	0xCD43: {"ColumnInterleaveFactor", TypeLong},
	0xCD44: {"ImageSequenceInfo", TypeUndefined},
	0xCD46: {"ImageStats", TypeUndefined},
	0xCD47: {"ProfileDynamicRange", TypeUndefined},
	0xCD48: {"ProfileGroupName", TypeAscii},
	0xCD49: {"JXLDistance", TypeFloat},
	0xCD4A: {"JXLEffort", TypeLong},
	0xCD4B: {"JXLDecodeSpeed", TypeLong},
}
