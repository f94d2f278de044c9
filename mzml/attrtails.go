// Package mzml reconstructs the mzML-isomorphic object tree from a flat,
// decoded metadata row table. Every exported type here mirrors an mzML
// element; every assembler function walks the row table (using a
// index.ChildIndex for navigation) to populate one such type.
package mzml

// Attribute accession tails. The decoder's B000 CV code carries a fixed set
// of synthetic "attribute" accessions (formatted as "B000:<tail>" by
// row.FormatAccession) standing in for mzML XML attributes that have no
// natural CV representation: element IDs, refs, counts, and similar.
const (
	AccAttrID       uint32 = 9910001
	AccAttrRef      uint32 = 9910002
	AccAttrName     uint32 = 9910003
	AccAttrLocation uint32 = 9910004

	AccAttrCVID       uint32 = 9900001
	AccAttrCVFullName uint32 = 9900002
	AccAttrCVVersion  uint32 = 9900003
	AccAttrCVURI      uint32 = 9900004

	AccAttrLabel                             uint32 = 9910020
	AccAttrStartTimeStamp                     uint32 = 9910005
	AccAttrDefaultInstrumentConfigurationRef  uint32 = 9910006
	AccAttrDefaultSourceFileRef               uint32 = 9910007
	AccAttrSampleRef                          uint32 = 9910008
	AccAttrDefaultDataProcessingRef           uint32 = 9910009
	AccAttrDataProcessingRef                  uint32 = 9910010
	AccAttrSourceFileRef                      uint32 = 9910011
	AccAttrNativeID                           uint32 = 9910012
	AccAttrSpotID                             uint32 = 9910013
	AccAttrExternalSpectrumID                 uint32 = 9910014
	AccAttrSpectrumRef                        uint32 = 9910015
	AccAttrScanSettingsRef                    uint32 = 9910016
	AccAttrInstrumentConfigurationRef         uint32 = 9910017
	AccAttrSoftwareRef                        uint32 = 9910018
	AccAttrVersion                            uint32 = 9910019

	AccAttrCount              uint32 = 9910100
	AccAttrOrder              uint32 = 9910101
	AccAttrIndex               uint32 = 9910102
	AccAttrScanNumber          uint32 = 9910103
	AccAttrDefaultArrayLength  uint32 = 9910104
	AccAttrArrayLength         uint32 = 9910105
	AccAttrEncodedLength       uint32 = 9910106
	AccAttrMSLevel             uint32 = 9910107
)

// attrKeyByTail maps an attribute tail back to the camelCase mzML attribute
// name it represents, for diagnostics via AttrKeyFromTail. The attribute
// synthesizer matches fields by struct tag and does not consult it.
var attrKeyByTail = map[uint32]string{
	AccAttrID:       "id",
	AccAttrRef:      "ref",
	AccAttrName:     "name",
	AccAttrLocation: "location",

	AccAttrCVID:       "CVID",
	AccAttrCVFullName: "fullName",
	AccAttrCVVersion:  "version",
	AccAttrCVURI:      "URI",

	AccAttrLabel:                            "label",
	AccAttrStartTimeStamp:                   "startTimeStamp",
	AccAttrDefaultInstrumentConfigurationRef: "defaultInstrumentConfigurationRef",
	AccAttrDefaultSourceFileRef:              "defaultSourceFileRef",
	AccAttrSampleRef:                         "sampleRef",
	AccAttrDefaultDataProcessingRef:          "defaultDataProcessingRef",
	AccAttrDataProcessingRef:                 "dataProcessingRef",
	AccAttrSourceFileRef:                     "sourceFileRef",
	AccAttrNativeID:                          "nativeID",
	AccAttrSpotID:                            "spotID",
	AccAttrExternalSpectrumID:                "externalSpectrumID",
	AccAttrSpectrumRef:                       "spectrumRef",
	AccAttrScanSettingsRef:                   "scanSettingsRef",
	AccAttrInstrumentConfigurationRef:        "instrumentConfigurationRef",
	AccAttrSoftwareRef:                       "softwareRef",
	AccAttrVersion:                           "version",

	AccAttrCount:             "count",
	AccAttrOrder:             "order",
	AccAttrIndex:             "index",
	AccAttrScanNumber:        "scanNumber",
	AccAttrDefaultArrayLength: "defaultArrayLength",
	AccAttrArrayLength:       "arrayLength",
	AccAttrEncodedLength:     "encodedLength",
	AccAttrMSLevel:           "msLevel",
}

// AttrKeyFromTail returns the camelCase attribute name for a B000 attribute
// tail, or "" if the tail is not a recognized attribute.
func AttrKeyFromTail(tail uint32) string {
	return attrKeyByTail[tail]
}
