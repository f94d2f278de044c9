package mzml

// MzML is the root of the reconstructed acquisition-data object tree.
type MzML struct {
	ID                       string `b000:"9910001"`
	Version                  string `b000:"9910019"`
	CvList                   []CvEntry
	FileDescription          FileDescription
	ReferenceableParamGroups []ReferenceableParamGroup
	SampleList               []Sample
	SoftwareList             []Software
	ScanSettingsList         []ScanSettings
	InstrumentConfigurations []InstrumentConfiguration
	DataProcessingList       []DataProcessing
	Run                      Run
}

// CvEntry describes one controlled vocabulary declared by the source file.
type CvEntry struct {
	ID       string `b000:"9900001"`
	FullName string `b000:"9900002"`
	Version  string `b000:"9900003"`
	URI      string `b000:"9900004"`
}

// FileDescription carries the fileContent params, the source files and
// contacts that produced the acquisition.
type FileDescription struct {
	FileContent CvParamGroup
	SourceFiles []SourceFile
	Contacts    []Contact
}

// CvParamGroup is the common param-list shape shared by most elements.
type CvParamGroup struct {
	CvParams   []CvParam
	UserParams []UserParam
}

// SourceFile describes one input file the acquisition was produced from.
type SourceFile struct {
	ID       string `b000:"9910001"`
	Name     string `b000:"9910003"`
	Location string `b000:"9910004"`
	Params   CvParamGroup
}

// Contact is a fileDescription contact block, carried purely as params.
type Contact struct {
	Params CvParamGroup
}

// ReferenceableParamGroup is a named, reusable bag of CvParams/UserParams.
type ReferenceableParamGroup struct {
	ID     string `b000:"9910001"`
	Params CvParamGroup
}

// ReferenceableParamGroupRef references a ReferenceableParamGroup by id.
type ReferenceableParamGroupRef struct {
	Ref string `b000:"9910002"`
}

// Sample describes one physical sample referenced by a Run.
type Sample struct {
	ID     string `b000:"9910001"`
	Name   string `b000:"9910003"`
	Params CvParamGroup
}

// Software describes one data-processing or acquisition software component.
type Software struct {
	ID             string `b000:"9910001"`
	Version        string `b000:"9910019"`
	SoftwareParams []SoftwareParam
	Params         CvParamGroup
}

// SoftwareParam is one structured <softwareParam> entry beneath a Software
// element: an accession/name/version triple rather than a generic param-list
// member, since mzML versions the method a software implements per param. A
// param with no version of its own inherits its parent Software's version.
type SoftwareParam struct {
	CvRef     string
	Accession string
	Name      string
	Version   string
}

// Component is one source/analyzer/detector entry of an instrument
// configuration, identified by its position (Order) in the original list.
type Component struct {
	Kind   string // "source", "analyzer", or "detector"
	Order  uint32 `b000:"9910101,zero"`
	Params CvParamGroup
}

// InstrumentConfiguration describes one instrument setup.
type InstrumentConfiguration struct {
	ID                          string `b000:"9910001"`
	ScanSettingsRef             string `b000:"9910016"`
	SoftwareRef                 string `b000:"9910018"`
	Components                  []Component
	Params                      CvParamGroup
	ReferenceableParamGroupRefs []ReferenceableParamGroupRef
}

// ProcessingMethod is one step of a DataProcessing pipeline.
type ProcessingMethod struct {
	Order       uint32 `b000:"9910101,zero"`
	SoftwareRef string `b000:"9910018"`
	Params      CvParamGroup
}

// DataProcessing groups the processing steps applied to produce the file.
type DataProcessing struct {
	ID      string `b000:"9910001"`
	Methods []ProcessingMethod
}

// SourceFileRef references a SourceFile by id, used inside a
// ScanSettings's sourceFileRefList.
type SourceFileRef struct {
	Ref string `b000:"9910002"`
}

// Target is one isolation-window/selection target of a ScanSettings.
type Target struct {
	Params CvParamGroup
}

// ScanSettings describes one acquisition's scan configuration.
type ScanSettings struct {
	ID                          string `b000:"9910001"`
	InstrumentConfigurationRef  string `b000:"9910017"`
	SourceFileRefs              []SourceFileRef
	TargetList                  []Target
	Params                      CvParamGroup
	ReferenceableParamGroupRefs []ReferenceableParamGroupRef
}

// ScanWindow bounds one m/z acquisition range of a Scan.
type ScanWindow struct {
	Params CvParamGroup
}

// Scan is one scan event of a Spectrum.
type Scan struct {
	InstrumentConfigurationRef string `b000:"9910017"`
	ScanWindows                []ScanWindow
	Params                     CvParamGroup
}

// IsolationWindow bounds a Precursor's isolation range.
type IsolationWindow struct {
	Params CvParamGroup
}

// SelectedIon is one ion selected by a Precursor.
type SelectedIon struct {
	Params CvParamGroup
}

// Activation describes the dissociation method applied to a Precursor.
type Activation struct {
	Params CvParamGroup
}

// Precursor is one precursor ion block of a Spectrum.
type Precursor struct {
	SpectrumRef         string `b000:"9910015"`
	SourceFileRef       string `b000:"9910011"`
	ExternalSpectrumID  string `b000:"9910014"`
	IsolationWindow     IsolationWindow
	SelectedIons        []SelectedIon
	Activation          Activation
}

// Product is one product ion block of a Spectrum (MS/MS product scans).
type Product struct {
	IsolationWindow IsolationWindow
}

// BinaryDataArray is one encoded data array (m/z, intensity, ...) of a
// Spectrum or Chromatogram.
type BinaryDataArray struct {
	ArrayLength       uint32 `b000:"9910105"`
	EncodedLength     uint32 `b000:"9910106"`
	DataProcessingRef string `b000:"9910010"`
	IsFloat32         bool
	IsFloat64         bool
	Params            CvParamGroup
	EncodedData       string // base64 payload; not filled by Build
}

// Spectrum is one mass spectrum and its full acquisition metadata.
type Spectrum struct {
	ID                 string `b000:"9910001"`
	Index              uint32 `b000:"9910102,zero"`
	NativeID           string `b000:"9910012"`
	SpotID             string `b000:"9910013"`
	DefaultArrayLength uint32 `b000:"9910104"`
	DataProcessingRef  string `b000:"9910010"`
	SourceFileRef      string `b000:"9910011"`
	Scans              []Scan
	Precursors         []Precursor
	Products           []Product
	BinaryDataArrays   []BinaryDataArray
	Params             CvParamGroup
}

// Chromatogram is one chromatogram and its acquisition metadata.
type Chromatogram struct {
	ID                 string `b000:"9910001"`
	Index              uint32 `b000:"9910102,zero"`
	DefaultArrayLength uint32 `b000:"9910104"`
	DataProcessingRef  string `b000:"9910010"`
	Precursor          *Precursor
	BinaryDataArrays   []BinaryDataArray
	Params             CvParamGroup
}

// Run is the top-level acquisition run: the ordered spectra and
// chromatograms plus the run-level metadata.
type Run struct {
	ID                                string `b000:"9910001"`
	DefaultInstrumentConfigurationRef string `b000:"9910006"`
	DefaultSourceFileRef              string `b000:"9910007"`
	SampleRef                         string `b000:"9910008"`
	StartTimeStamp                    string `b000:"9910005"`
	DefaultDataProcessingRef          string `b000:"9910009"`
	Spectra                           []Spectrum
	Chromatograms                     []Chromatogram
}
