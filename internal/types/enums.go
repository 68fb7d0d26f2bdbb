package types

type ReferenceKind string

const (
	KindAudioFileProcessor ReferenceKind = "audiofileprocessor"
	KindSampleClip         ReferenceKind = "sampleclip"
	KindSlicerT            ReferenceKind = "slicert"
	KindSF2Player          ReferenceKind = "sf2player"
	KindVestige            ReferenceKind = "vestige"
)

type StrategyKind string

const (
	StrategyIndex StrategyKind = "idx"
	StrategyMatch StrategyKind = "match"
	StrategyRegex StrategyKind = "re"
)

// ResourceClass groups resource file extensions into families that must not
// be remapped into one another (a sample stays a sample, a VST binary stays
// a VST binary).
type ResourceClass string

const (
	ClassAudio     ResourceClass = "audio"
	ClassSoundfont ResourceClass = "soundfont"
	ClassVST       ResourceClass = "vst"
	ClassUnknown   ResourceClass = "unknown"
)
