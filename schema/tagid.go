package schema

// TagID is a compact u8 identifier for an mzML tag. Rows carry a TagID
// instead of a tag name; the schema tree is keyed by TagID for O(1) lookup.
type TagID uint8

const (
	FileContent             TagID = 0
	SourceFile              TagID = 1
	Contact                 TagID = 2
	ReferenceableParamGroup TagID = 3
	Sample                  TagID = 4

	Instrument        TagID = 5 // serializes as "instrumentConfiguration"
	ComponentSource   TagID = 6 // serializes as "source"
	ComponentAnalyzer TagID = 7 // serializes as "analyzer"
	ComponentDetector TagID = 8 // serializes as "detector"

	Software         TagID = 9
	ProcessingMethod TagID = 10
	ScanSettings     TagID = 11
	Target           TagID = 12
	Run              TagID = 13

	Spectrum            TagID = 14
	SpectrumDescription TagID = 15
	Scan                TagID = 16
	ScanWindow          TagID = 17
	Precursor           TagID = 18
	IsolationWindow     TagID = 19
	SelectedIon         TagID = 20
	Activation          TagID = 21
	Product             TagID = 22
	BinaryDataArray     TagID = 23

	Chromatogram TagID = 24

	FileDescription TagID = 25

	SourceFileList    TagID = 26
	SourceFileRef     TagID = 27
	SourceFileRefList TagID = 28

	ReferenceableParamGroupList TagID = 29
	ReferenceableParamGroupRef  TagID = 30

	SampleList TagID = 31

	InstrumentConfigurationList TagID = 32
	ComponentList               TagID = 33

	SoftwareList  TagID = 34
	SoftwareParam TagID = 35
	SoftwareRef   TagID = 36

	DataProcessing     TagID = 37
	DataProcessingList TagID = 38

	ScanSettingsList         TagID = 39
	AcquisitionSettings      TagID = 40
	AcquisitionSettingsList  TagID = 41

	TargetList TagID = 42

	SpectrumList   TagID = 43
	ScanList       TagID = 44
	ScanWindowList TagID = 45

	PrecursorList   TagID = 46
	SelectedIonList TagID = 47
	ProductList     TagID = 48

	BinaryDataArrayList TagID = 49
	Binary              TagID = 50

	ChromatogramList TagID = 51

	CvParam   TagID = 52
	UserParam TagID = 53

	Unknown TagID = 255
)

var tagByXMLName = map[string]TagID{
	"fileContent":             FileContent,
	"sourceFile":              SourceFile,
	"contact":                 Contact,
	"referenceableParamGroup": ReferenceableParamGroup,
	"sample":                  Sample,

	"instrumentConfiguration": Instrument,
	"source":                  ComponentSource,
	"analyzer":                ComponentAnalyzer,
	"detector":                ComponentDetector,

	"software":         Software,
	"processingMethod": ProcessingMethod,
	"scanSettings":     ScanSettings,
	"target":           Target,
	"run":              Run,

	"spectrum":            Spectrum,
	"spectrumDescription": SpectrumDescription,
	"scan":                Scan,
	"scanWindow":          ScanWindow,
	"precursor":           Precursor,
	"isolationWindow":     IsolationWindow,
	"selectedIon":         SelectedIon,
	"activation":          Activation,
	"product":             Product,
	"binaryDataArray":     BinaryDataArray,

	"chromatogram":    Chromatogram,
	"fileDescription": FileDescription,

	"sourceFileList":    SourceFileList,
	"sourceFileRef":     SourceFileRef,
	"sourceFileRefList": SourceFileRefList,

	"referenceableParamGroupList": ReferenceableParamGroupList,
	"referenceableParamGroupRef":  ReferenceableParamGroupRef,

	"sampleList": SampleList,

	"instrumentConfigurationList": InstrumentConfigurationList,
	"componentList":               ComponentList,

	"softwareList":  SoftwareList,
	"softwareParam": SoftwareParam,
	"softwareRef":   SoftwareRef,

	"dataProcessing":     DataProcessing,
	"dataProcessingList": DataProcessingList,

	"scanSettingsList":        ScanSettingsList,
	"acquisitionSettings":     AcquisitionSettings,
	"acquisitionSettingsList": AcquisitionSettingsList,

	"targetList": TargetList,

	"spectrumList":   SpectrumList,
	"scanList":       ScanList,
	"scanWindowList": ScanWindowList,

	"precursorList":   PrecursorList,
	"selectedIonList": SelectedIonList,
	"productList":     ProductList,

	"binaryDataArrayList": BinaryDataArrayList,
	"binary":              Binary,

	"chromatogramList": ChromatogramList,

	"cvParam":   CvParam,
	"userParam": UserParam,
}

// TagFromXMLName maps an mzML tag name to its TagID, or Unknown.
func TagFromXMLName(name string) TagID {
	if t, ok := tagByXMLName[name]; ok {
		return t
	}
	return Unknown
}

// TagFromByte maps a wire byte to a TagID. Any byte outside the defined
// range (and not the Unknown sentinel) still maps to Unknown rather than
// failing, since the format treats unrecognized tags as data to ignore
// rather than a decode error.
func TagFromByte(b uint8) TagID {
	if b <= uint8(UserParam) {
		return TagID(b)
	}
	return Unknown
}
