package tag

import "github.com/codeninja55/go-radx/dicom/vr"

// Well-known tags used throughout the dicom and dimse packages.
//
// DICOM Standard Reference (Registry of DICOM Data Elements):
// https://dicom.nema.org/medical/dicom/current/output/html/part06.html#chapter_6
var (
	FileMetaInformationGroupLength = New(0x0002, 0x0000)
	FileMetaInformationVersion     = New(0x0002, 0x0001)
	MediaStorageSOPClassUID        = New(0x0002, 0x0002)
	MediaStorageSOPInstanceUID     = New(0x0002, 0x0003)
	TransferSyntaxUID              = New(0x0002, 0x0010)
	ImplementationClassUID         = New(0x0002, 0x0012)
	ImplementationVersionName      = New(0x0002, 0x0013)

	SOPClassUID                        = New(0x0008, 0x0016)
	SOPInstanceUID                      = New(0x0008, 0x0018)
	StudyDate                           = New(0x0008, 0x0020)
	SeriesDate                          = New(0x0008, 0x0021)
	AcquisitionDate                     = New(0x0008, 0x0022)
	ContentDate                         = New(0x0008, 0x0023)
	AcquisitionDateTime                 = New(0x0008, 0x002A)
	StudyTime                           = New(0x0008, 0x0030)
	SeriesTime                          = New(0x0008, 0x0031)
	AcquisitionTime                     = New(0x0008, 0x0032)
	ContentTime                         = New(0x0008, 0x0033)
	AccessionNumber                     = New(0x0008, 0x0050)
	IssuerOfAccessionNumberSequence     = New(0x0008, 0x0051)
	Modality                            = New(0x0008, 0x0060)
	ModalitiesInStudy                   = New(0x0008, 0x0061)
	ReferringPhysicianName              = New(0x0008, 0x0090)
	ReferringPhysicianAddress           = New(0x0008, 0x0092)
	ReferringPhysicianTelephoneNumbers  = New(0x0008, 0x0094)
	StudyDescription                    = New(0x0008, 0x1030)
	SeriesDescription                   = New(0x0008, 0x103E)
	InstitutionName                     = New(0x0008, 0x0080)
	InstitutionAddress                  = New(0x0008, 0x0081)
	InstitutionalDepartmentName         = New(0x0008, 0x1040)
	PhysiciansOfRecord                  = New(0x0008, 0x1048)
	PerformingPhysicianName             = New(0x0008, 0x1050)
	NameOfPhysiciansReadingStudy        = New(0x0008, 0x1060)
	RequestingPhysician                 = New(0x0008, 0x1090)
	ConsultingPhysicianName             = New(0x0008, 0x009C)
	AdmittingDiagnosesDescription       = New(0x0008, 0x1080)
	ReferencedStudySequence             = New(0x0008, 0x1110)
	ImageComments                       = New(0x0020, 0x4000)
	InstanceCreatorUID                  = New(0x0008, 0x0014)
	InstanceCreationDate                = New(0x0008, 0x0012)
	InstanceCreationTime                = New(0x0008, 0x0013)
	DerivationDescription               = New(0x0008, 0x2111)
	TimezoneOffsetFromUTC               = New(0x0008, 0x0201)

	PatientName                  = New(0x0010, 0x0010)
	PatientID                    = New(0x0010, 0x0020)
	PatientBirthDate             = New(0x0010, 0x0030)
	PatientBirthTime             = New(0x0010, 0x0032)
	PatientSex                   = New(0x0010, 0x0040)
	OtherPatientIDs              = New(0x0010, 0x1000)
	OtherPatientNames            = New(0x0010, 0x1001)
	PatientBirthName             = New(0x0010, 0x1005)
	PatientAge                   = New(0x0010, 0x1010)
	PatientSize                  = New(0x0010, 0x1020)
	PatientWeight                = New(0x0010, 0x1030)
	MilitaryRank                 = New(0x0010, 0x1080)
	BranchOfService              = New(0x0010, 0x1081)
	PatientMotherBirthName       = New(0x0010, 0x1060)
	MedicalRecordLocator         = New(0x0010, 0x1090)
	CountryOfResidence           = New(0x0010, 0x2150)
	RegionOfResidence            = New(0x0010, 0x2152)
	Occupation                   = New(0x0010, 0x2180)
	EthnicGroup                  = New(0x0010, 0x2160)
	AdditionalPatientHistory     = New(0x0010, 0x21B0)
	PatientComments              = New(0x0010, 0x4000)
	PatientSpeciesDescription    = New(0x0010, 0x2201)
	PatientBreedDescription      = New(0x0010, 0x2292)
	PatientSexNeutered           = New(0x0010, 0x2203)
	PatientInstitutionResidence  = New(0x0038, 0x0400)
	CurrentPatientLocation       = New(0x0038, 0x0300)
	ResponsiblePerson            = New(0x0010, 0x2297)
	ResponsibleOrganization      = New(0x0010, 0x2299)
	PatientIdentityRemoved       = New(0x0012, 0x0062)
	DeIdentificationMethod       = New(0x0012, 0x0063)
	DeIdentificationMethodCodeSequence = New(0x0012, 0x0064)

	StudyInstanceUID            = New(0x0020, 0x000D)
	SeriesInstanceUID           = New(0x0020, 0x000E)
	StudyID                     = New(0x0020, 0x0010)
	SeriesNumber                = New(0x0020, 0x0011)
	InstanceNumber              = New(0x0020, 0x0013)
	FrameComments               = New(0x0020, 0x9158)

	RequestAttributesSequence       = New(0x0040, 0x0275)
	OperatorsName                   = New(0x0008, 0x1070)
	ProtocolName                    = New(0x0018, 0x1030)
	StationName                     = New(0x0008, 0x1010)
	DeviceSerialNumber              = New(0x0018, 0x1000)
	RequestingService                      = New(0x0032, 0x1033)
	RequestedProcedureDescription          = New(0x0032, 0x1060)
	PerformedProcedureStepDescription      = New(0x0040, 0x0254)
	PerformedProcedureStepStartDate        = New(0x0040, 0x0244)
	PerformedProcedureStepStartTime        = New(0x0040, 0x0245)
	PerformedProcedureStepEndDate          = New(0x0040, 0x0250)
	PerformedProcedureStepEndTime          = New(0x0040, 0x0251)
	ModifiedAttributesSequence             = New(0x0400, 0x0550)
	OriginalAttributesSequence             = New(0x0400, 0x0561)
	DigitalSignaturesSequence              = New(0x0400, 0x0100)

	PersonName              = New(0x0040, 0xA123)
	PersonAddress           = New(0x0040, 0xA353)
	PersonTelephoneNumbers  = New(0x0040, 0xA354)
	TextComments            = New(0x4000, 0x4000)
	TextString              = New(0x2030, 0x0020)

	NumberOfStudyRelatedInstances = New(0x0020, 0x1208)

	Rows                       = New(0x0028, 0x0010)
	Columns                    = New(0x0028, 0x0011)
	BitsAllocated              = New(0x0028, 0x0100)
	BitsStored                 = New(0x0028, 0x0101)
	HighBit                    = New(0x0028, 0x0102)
	PixelRepresentation        = New(0x0028, 0x0103)
	SamplesPerPixel            = New(0x0028, 0x0002)
	PhotometricInterpretation  = New(0x0028, 0x0004)
	PlanarConfiguration        = New(0x0028, 0x0006)
	NumberOfFrames             = New(0x0028, 0x0008)
	PixelData                  = New(0x7FE0, 0x0010)
)

// TagDict maps well-known tags to their dictionary metadata.
//
// This is a curated subset of the full PS3.6 registry covering every tag
// referenced by this module; it is not a complete implementation of the
// standard's ~4000 entries.
var TagDict = map[Tag]Info{
	FileMetaInformationGroupLength:    {Tag: FileMetaInformationGroupLength, VRs: []vr.VR{vr.UnsignedLong}, Name: "File Meta Information Group Length", Keyword: "FileMetaInformationGroupLength", VM: "1"},
	FileMetaInformationVersion:        {Tag: FileMetaInformationVersion, VRs: []vr.VR{vr.OtherByte}, Name: "File Meta Information Version", Keyword: "FileMetaInformationVersion", VM: "1"},
	MediaStorageSOPClassUID:           {Tag: MediaStorageSOPClassUID, VRs: []vr.VR{vr.UniqueIdentifier}, Name: "Media Storage SOP Class UID", Keyword: "MediaStorageSOPClassUID", VM: "1"},
	MediaStorageSOPInstanceUID:        {Tag: MediaStorageSOPInstanceUID, VRs: []vr.VR{vr.UniqueIdentifier}, Name: "Media Storage SOP Instance UID", Keyword: "MediaStorageSOPInstanceUID", VM: "1"},
	TransferSyntaxUID:                 {Tag: TransferSyntaxUID, VRs: []vr.VR{vr.UniqueIdentifier}, Name: "Transfer Syntax UID", Keyword: "TransferSyntaxUID", VM: "1"},
	ImplementationClassUID:            {Tag: ImplementationClassUID, VRs: []vr.VR{vr.UniqueIdentifier}, Name: "Implementation Class UID", Keyword: "ImplementationClassUID", VM: "1"},
	ImplementationVersionName:         {Tag: ImplementationVersionName, VRs: []vr.VR{vr.ShortString}, Name: "Implementation Version Name", Keyword: "ImplementationVersionName", VM: "1"},
	SOPClassUID:                       {Tag: SOPClassUID, VRs: []vr.VR{vr.UniqueIdentifier}, Name: "SOP Class UID", Keyword: "SOPClassUID", VM: "1"},
	SOPInstanceUID:                    {Tag: SOPInstanceUID, VRs: []vr.VR{vr.UniqueIdentifier}, Name: "SOP Instance UID", Keyword: "SOPInstanceUID", VM: "1"},
	StudyDate:                         {Tag: StudyDate, VRs: []vr.VR{vr.Date}, Name: "Study Date", Keyword: "StudyDate", VM: "1"},
	SeriesDate:                        {Tag: SeriesDate, VRs: []vr.VR{vr.Date}, Name: "Series Date", Keyword: "SeriesDate", VM: "1"},
	AcquisitionDate:                   {Tag: AcquisitionDate, VRs: []vr.VR{vr.Date}, Name: "Acquisition Date", Keyword: "AcquisitionDate", VM: "1"},
	ContentDate:                       {Tag: ContentDate, VRs: []vr.VR{vr.Date}, Name: "Content Date", Keyword: "ContentDate", VM: "1"},
	AcquisitionDateTime:               {Tag: AcquisitionDateTime, VRs: []vr.VR{vr.DateTime}, Name: "Acquisition DateTime", Keyword: "AcquisitionDateTime", VM: "1"},
	StudyTime:                         {Tag: StudyTime, VRs: []vr.VR{vr.Time}, Name: "Study Time", Keyword: "StudyTime", VM: "1"},
	SeriesTime:                        {Tag: SeriesTime, VRs: []vr.VR{vr.Time}, Name: "Series Time", Keyword: "SeriesTime", VM: "1"},
	AcquisitionTime:                   {Tag: AcquisitionTime, VRs: []vr.VR{vr.Time}, Name: "Acquisition Time", Keyword: "AcquisitionTime", VM: "1"},
	ContentTime:                       {Tag: ContentTime, VRs: []vr.VR{vr.Time}, Name: "Content Time", Keyword: "ContentTime", VM: "1"},
	AccessionNumber:                   {Tag: AccessionNumber, VRs: []vr.VR{vr.ShortString}, Name: "Accession Number", Keyword: "AccessionNumber", VM: "1"},
	IssuerOfAccessionNumberSequence:   {Tag: IssuerOfAccessionNumberSequence, VRs: []vr.VR{vr.SequenceOfItems}, Name: "Issuer of Accession Number Sequence", Keyword: "IssuerOfAccessionNumberSequence", VM: "1"},
	Modality:                          {Tag: Modality, VRs: []vr.VR{vr.CodeString}, Name: "Modality", Keyword: "Modality", VM: "1"},
	ModalitiesInStudy:                 {Tag: ModalitiesInStudy, VRs: []vr.VR{vr.CodeString}, Name: "Modalities in Study", Keyword: "ModalitiesInStudy", VM: "1-n"},
	ReferringPhysicianName:            {Tag: ReferringPhysicianName, VRs: []vr.VR{vr.PersonName}, Name: "Referring Physician's Name", Keyword: "ReferringPhysicianName", VM: "1"},
	ReferringPhysicianAddress:         {Tag: ReferringPhysicianAddress, VRs: []vr.VR{vr.ShortText}, Name: "Referring Physician's Address", Keyword: "ReferringPhysicianAddress", VM: "1"},
	ReferringPhysicianTelephoneNumbers: {Tag: ReferringPhysicianTelephoneNumbers, VRs: []vr.VR{vr.ShortString}, Name: "Referring Physician's Telephone Numbers", Keyword: "ReferringPhysicianTelephoneNumbers", VM: "1-n"},
	StudyDescription:                  {Tag: StudyDescription, VRs: []vr.VR{vr.LongString}, Name: "Study Description", Keyword: "StudyDescription", VM: "1"},
	SeriesDescription:                 {Tag: SeriesDescription, VRs: []vr.VR{vr.LongString}, Name: "Series Description", Keyword: "SeriesDescription", VM: "1"},
	InstitutionName:                   {Tag: InstitutionName, VRs: []vr.VR{vr.LongString}, Name: "Institution Name", Keyword: "InstitutionName", VM: "1"},
	InstitutionAddress:                {Tag: InstitutionAddress, VRs: []vr.VR{vr.ShortText}, Name: "Institution Address", Keyword: "InstitutionAddress", VM: "1"},
	InstitutionalDepartmentName:       {Tag: InstitutionalDepartmentName, VRs: []vr.VR{vr.LongString}, Name: "Institutional Department Name", Keyword: "InstitutionalDepartmentName", VM: "1"},
	PhysiciansOfRecord:                {Tag: PhysiciansOfRecord, VRs: []vr.VR{vr.PersonName}, Name: "Physician(s) of Record", Keyword: "PhysiciansOfRecord", VM: "1-n"},
	PerformingPhysicianName:           {Tag: PerformingPhysicianName, VRs: []vr.VR{vr.PersonName}, Name: "Performing Physician's Name", Keyword: "PerformingPhysicianName", VM: "1-n"},
	NameOfPhysiciansReadingStudy:      {Tag: NameOfPhysiciansReadingStudy, VRs: []vr.VR{vr.PersonName}, Name: "Name of Physician(s) Reading Study", Keyword: "NameOfPhysiciansReadingStudy", VM: "1-n"},
	RequestingPhysician:               {Tag: RequestingPhysician, VRs: []vr.VR{vr.PersonName}, Name: "Requesting Physician", Keyword: "RequestingPhysician", VM: "1"},
	ConsultingPhysicianName:           {Tag: ConsultingPhysicianName, VRs: []vr.VR{vr.PersonName}, Name: "Consulting Physician's Name", Keyword: "ConsultingPhysicianName", VM: "1-n"},
	AdmittingDiagnosesDescription:     {Tag: AdmittingDiagnosesDescription, VRs: []vr.VR{vr.LongString}, Name: "Admitting Diagnoses Description", Keyword: "AdmittingDiagnosesDescription", VM: "1-n"},
	ReferencedStudySequence:           {Tag: ReferencedStudySequence, VRs: []vr.VR{vr.SequenceOfItems}, Name: "Referenced Study Sequence", Keyword: "ReferencedStudySequence", VM: "1"},
	ImageComments:                     {Tag: ImageComments, VRs: []vr.VR{vr.LongText}, Name: "Image Comments", Keyword: "ImageComments", VM: "1"},
	InstanceCreatorUID:                {Tag: InstanceCreatorUID, VRs: []vr.VR{vr.UniqueIdentifier}, Name: "Instance Creator UID", Keyword: "InstanceCreatorUID", VM: "1"},
	InstanceCreationDate:              {Tag: InstanceCreationDate, VRs: []vr.VR{vr.Date}, Name: "Instance Creation Date", Keyword: "InstanceCreationDate", VM: "1"},
	InstanceCreationTime:              {Tag: InstanceCreationTime, VRs: []vr.VR{vr.Time}, Name: "Instance Creation Time", Keyword: "InstanceCreationTime", VM: "1"},
	DerivationDescription:             {Tag: DerivationDescription, VRs: []vr.VR{vr.ShortText}, Name: "Derivation Description", Keyword: "DerivationDescription", VM: "1"},
	TimezoneOffsetFromUTC:             {Tag: TimezoneOffsetFromUTC, VRs: []vr.VR{vr.ShortString}, Name: "Timezone Offset From UTC", Keyword: "TimezoneOffsetFromUTC", VM: "1"},

	PatientName:                  {Tag: PatientName, VRs: []vr.VR{vr.PersonName}, Name: "Patient's Name", Keyword: "PatientName", VM: "1"},
	PatientID:                    {Tag: PatientID, VRs: []vr.VR{vr.LongString}, Name: "Patient ID", Keyword: "PatientID", VM: "1"},
	PatientBirthDate:             {Tag: PatientBirthDate, VRs: []vr.VR{vr.Date}, Name: "Patient's Birth Date", Keyword: "PatientBirthDate", VM: "1"},
	PatientBirthTime:             {Tag: PatientBirthTime, VRs: []vr.VR{vr.Time}, Name: "Patient's Birth Time", Keyword: "PatientBirthTime", VM: "1"},
	PatientSex:                   {Tag: PatientSex, VRs: []vr.VR{vr.CodeString}, Name: "Patient's Sex", Keyword: "PatientSex", VM: "1"},
	OtherPatientIDs:               {Tag: OtherPatientIDs, VRs: []vr.VR{vr.LongString}, Name: "Other Patient IDs", Keyword: "OtherPatientIDs", VM: "1-n"},
	OtherPatientNames:             {Tag: OtherPatientNames, VRs: []vr.VR{vr.PersonName}, Name: "Other Patient Names", Keyword: "OtherPatientNames", VM: "1-n"},
	PatientBirthName:              {Tag: PatientBirthName, VRs: []vr.VR{vr.PersonName}, Name: "Patient's Birth Name", Keyword: "PatientBirthName", VM: "1"},
	PatientAge:                    {Tag: PatientAge, VRs: []vr.VR{vr.AgeString}, Name: "Patient's Age", Keyword: "PatientAge", VM: "1"},
	PatientSize:                   {Tag: PatientSize, VRs: []vr.VR{vr.DecimalString}, Name: "Patient's Size", Keyword: "PatientSize", VM: "1"},
	PatientWeight:                 {Tag: PatientWeight, VRs: []vr.VR{vr.DecimalString}, Name: "Patient's Weight", Keyword: "PatientWeight", VM: "1"},
	MilitaryRank:                  {Tag: MilitaryRank, VRs: []vr.VR{vr.LongString}, Name: "Military Rank", Keyword: "MilitaryRank", VM: "1"},
	BranchOfService:                {Tag: BranchOfService, VRs: []vr.VR{vr.LongString}, Name: "Branch of Service", Keyword: "BranchOfService", VM: "1"},
	PatientMotherBirthName:        {Tag: PatientMotherBirthName, VRs: []vr.VR{vr.PersonName}, Name: "Patient's Mother's Birth Name", Keyword: "PatientMotherBirthName", VM: "1"},
	MedicalRecordLocator:          {Tag: MedicalRecordLocator, VRs: []vr.VR{vr.LongString}, Name: "Medical Record Locator", Keyword: "MedicalRecordLocator", VM: "1"},
	CountryOfResidence:            {Tag: CountryOfResidence, VRs: []vr.VR{vr.LongString}, Name: "Country of Residence", Keyword: "CountryOfResidence", VM: "1"},
	RegionOfResidence:             {Tag: RegionOfResidence, VRs: []vr.VR{vr.LongString}, Name: "Region of Residence", Keyword: "RegionOfResidence", VM: "1-n"},
	Occupation:                    {Tag: Occupation, VRs: []vr.VR{vr.ShortString}, Name: "Occupation", Keyword: "Occupation", VM: "1"},
	EthnicGroup:                   {Tag: EthnicGroup, VRs: []vr.VR{vr.ShortString}, Name: "Ethnic Group", Keyword: "EthnicGroup", VM: "1"},
	AdditionalPatientHistory:      {Tag: AdditionalPatientHistory, VRs: []vr.VR{vr.LongText}, Name: "Additional Patient History", Keyword: "AdditionalPatientHistory", VM: "1"},
	PatientComments:               {Tag: PatientComments, VRs: []vr.VR{vr.LongText}, Name: "Patient Comments", Keyword: "PatientComments", VM: "1"},
	PatientSpeciesDescription:     {Tag: PatientSpeciesDescription, VRs: []vr.VR{vr.LongString}, Name: "Patient Species Description", Keyword: "PatientSpeciesDescription", VM: "1"},
	PatientBreedDescription:       {Tag: PatientBreedDescription, VRs: []vr.VR{vr.LongString}, Name: "Patient Breed Description", Keyword: "PatientBreedDescription", VM: "1"},
	PatientSexNeutered:            {Tag: PatientSexNeutered, VRs: []vr.VR{vr.CodeString}, Name: "Patient's Sex Neutered", Keyword: "PatientSexNeutered", VM: "1"},
	PatientInstitutionResidence:   {Tag: PatientInstitutionResidence, VRs: []vr.VR{vr.LongString}, Name: "Patient Institution Residence", Keyword: "PatientInstitutionResidence", VM: "1"},
	CurrentPatientLocation:        {Tag: CurrentPatientLocation, VRs: []vr.VR{vr.LongString}, Name: "Current Patient Location", Keyword: "CurrentPatientLocation", VM: "1"},
	ResponsiblePerson:             {Tag: ResponsiblePerson, VRs: []vr.VR{vr.PersonName}, Name: "Responsible Person", Keyword: "ResponsiblePerson", VM: "1"},
	ResponsibleOrganization:       {Tag: ResponsibleOrganization, VRs: []vr.VR{vr.LongString}, Name: "Responsible Organization", Keyword: "ResponsibleOrganization", VM: "1"},
	PatientIdentityRemoved:        {Tag: PatientIdentityRemoved, VRs: []vr.VR{vr.CodeString}, Name: "Patient Identity Removed", Keyword: "PatientIdentityRemoved", VM: "1"},
	DeIdentificationMethod:        {Tag: DeIdentificationMethod, VRs: []vr.VR{vr.LongString}, Name: "De-identification Method", Keyword: "DeIdentificationMethod", VM: "1"},
	DeIdentificationMethodCodeSequence: {Tag: DeIdentificationMethodCodeSequence, VRs: []vr.VR{vr.SequenceOfItems}, Name: "De-identification Method Code Sequence", Keyword: "DeIdentificationMethodCodeSequence", VM: "1"},

	StudyInstanceUID:  {Tag: StudyInstanceUID, VRs: []vr.VR{vr.UniqueIdentifier}, Name: "Study Instance UID", Keyword: "StudyInstanceUID", VM: "1"},
	SeriesInstanceUID: {Tag: SeriesInstanceUID, VRs: []vr.VR{vr.UniqueIdentifier}, Name: "Series Instance UID", Keyword: "SeriesInstanceUID", VM: "1"},
	StudyID:           {Tag: StudyID, VRs: []vr.VR{vr.ShortString}, Name: "Study ID", Keyword: "StudyID", VM: "1"},
	SeriesNumber:      {Tag: SeriesNumber, VRs: []vr.VR{vr.IntegerString}, Name: "Series Number", Keyword: "SeriesNumber", VM: "1"},
	InstanceNumber:    {Tag: InstanceNumber, VRs: []vr.VR{vr.IntegerString}, Name: "Instance Number", Keyword: "InstanceNumber", VM: "1"},
	FrameComments:     {Tag: FrameComments, VRs: []vr.VR{vr.LongText}, Name: "Frame Comments", Keyword: "FrameComments", VM: "1"},

	RequestAttributesSequence:         {Tag: RequestAttributesSequence, VRs: []vr.VR{vr.SequenceOfItems}, Name: "Request Attributes Sequence", Keyword: "RequestAttributesSequence", VM: "1"},
	OperatorsName:                     {Tag: OperatorsName, VRs: []vr.VR{vr.PersonName}, Name: "Operators' Name", Keyword: "OperatorsName", VM: "1-n"},
	ProtocolName:                      {Tag: ProtocolName, VRs: []vr.VR{vr.LongString}, Name: "Protocol Name", Keyword: "ProtocolName", VM: "1"},
	StationName:                       {Tag: StationName, VRs: []vr.VR{vr.ShortString}, Name: "Station Name", Keyword: "StationName", VM: "1"},
	DeviceSerialNumber:                {Tag: DeviceSerialNumber, VRs: []vr.VR{vr.LongString}, Name: "Device Serial Number", Keyword: "DeviceSerialNumber", VM: "1"},
	RequestingService:                 {Tag: RequestingService, VRs: []vr.VR{vr.LongString}, Name: "Requesting Service", Keyword: "RequestingService", VM: "1"},
	RequestedProcedureDescription:     {Tag: RequestedProcedureDescription, VRs: []vr.VR{vr.LongString}, Name: "Requested Procedure Description", Keyword: "RequestedProcedureDescription", VM: "1"},
	PerformedProcedureStepDescription: {Tag: PerformedProcedureStepDescription, VRs: []vr.VR{vr.LongString}, Name: "Performed Procedure Step Description", Keyword: "PerformedProcedureStepDescription", VM: "1"},
	PerformedProcedureStepStartDate:   {Tag: PerformedProcedureStepStartDate, VRs: []vr.VR{vr.Date}, Name: "Performed Procedure Step Start Date", Keyword: "PerformedProcedureStepStartDate", VM: "1"},
	PerformedProcedureStepStartTime:   {Tag: PerformedProcedureStepStartTime, VRs: []vr.VR{vr.Time}, Name: "Performed Procedure Step Start Time", Keyword: "PerformedProcedureStepStartTime", VM: "1"},
	PerformedProcedureStepEndDate:     {Tag: PerformedProcedureStepEndDate, VRs: []vr.VR{vr.Date}, Name: "Performed Procedure Step End Date", Keyword: "PerformedProcedureStepEndDate", VM: "1"},
	PerformedProcedureStepEndTime:     {Tag: PerformedProcedureStepEndTime, VRs: []vr.VR{vr.Time}, Name: "Performed Procedure Step End Time", Keyword: "PerformedProcedureStepEndTime", VM: "1"},
	ModifiedAttributesSequence:        {Tag: ModifiedAttributesSequence, VRs: []vr.VR{vr.SequenceOfItems}, Name: "Modified Attributes Sequence", Keyword: "ModifiedAttributesSequence", VM: "1"},
	OriginalAttributesSequence:        {Tag: OriginalAttributesSequence, VRs: []vr.VR{vr.SequenceOfItems}, Name: "Original Attributes Sequence", Keyword: "OriginalAttributesSequence", VM: "1"},
	DigitalSignaturesSequence:         {Tag: DigitalSignaturesSequence, VRs: []vr.VR{vr.SequenceOfItems}, Name: "Digital Signatures Sequence", Keyword: "DigitalSignaturesSequence", VM: "1"},

	PersonName:             {Tag: PersonName, VRs: []vr.VR{vr.PersonName}, Name: "Person Name", Keyword: "PersonName", VM: "1"},
	PersonAddress:          {Tag: PersonAddress, VRs: []vr.VR{vr.ShortText}, Name: "Person's Address", Keyword: "PersonAddress", VM: "1"},
	PersonTelephoneNumbers: {Tag: PersonTelephoneNumbers, VRs: []vr.VR{vr.LongString}, Name: "Person's Telephone Numbers", Keyword: "PersonTelephoneNumbers", VM: "1-n"},
	TextComments:           {Tag: TextComments, VRs: []vr.VR{vr.UnlimitedText}, Name: "Text Comments", Keyword: "TextComments", VM: "1"},
	TextString:             {Tag: TextString, VRs: []vr.VR{vr.ShortText}, Name: "Text String", Keyword: "TextString", VM: "1"},

	NumberOfStudyRelatedInstances: {Tag: NumberOfStudyRelatedInstances, VRs: []vr.VR{vr.IntegerString}, Name: "Number of Study Related Instances", Keyword: "NumberOfStudyRelatedInstances", VM: "1"},

	Rows:                      {Tag: Rows, VRs: []vr.VR{vr.UnsignedShort}, Name: "Rows", Keyword: "Rows", VM: "1"},
	Columns:                   {Tag: Columns, VRs: []vr.VR{vr.UnsignedShort}, Name: "Columns", Keyword: "Columns", VM: "1"},
	BitsAllocated:             {Tag: BitsAllocated, VRs: []vr.VR{vr.UnsignedShort}, Name: "Bits Allocated", Keyword: "BitsAllocated", VM: "1"},
	BitsStored:                {Tag: BitsStored, VRs: []vr.VR{vr.UnsignedShort}, Name: "Bits Stored", Keyword: "BitsStored", VM: "1"},
	HighBit:                   {Tag: HighBit, VRs: []vr.VR{vr.UnsignedShort}, Name: "High Bit", Keyword: "HighBit", VM: "1"},
	PixelRepresentation:       {Tag: PixelRepresentation, VRs: []vr.VR{vr.UnsignedShort}, Name: "Pixel Representation", Keyword: "PixelRepresentation", VM: "1"},
	SamplesPerPixel:           {Tag: SamplesPerPixel, VRs: []vr.VR{vr.UnsignedShort}, Name: "Samples per Pixel", Keyword: "SamplesPerPixel", VM: "1"},
	PhotometricInterpretation: {Tag: PhotometricInterpretation, VRs: []vr.VR{vr.CodeString}, Name: "Photometric Interpretation", Keyword: "PhotometricInterpretation", VM: "1"},
	PlanarConfiguration:       {Tag: PlanarConfiguration, VRs: []vr.VR{vr.UnsignedShort}, Name: "Planar Configuration", Keyword: "PlanarConfiguration", VM: "1"},
	NumberOfFrames:            {Tag: NumberOfFrames, VRs: []vr.VR{vr.IntegerString}, Name: "Number of Frames", Keyword: "NumberOfFrames", VM: "1"},
	PixelData:                 {Tag: PixelData, VRs: []vr.VR{vr.OtherWord, vr.OtherByte}, Name: "Pixel Data", Keyword: "PixelData", VM: "1"},
}
