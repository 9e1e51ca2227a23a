package conjugation

import "github.com/eslsoft/conjugator/internal/entity"

// baseKind tells the synthesizer what the suffixes attach to.
type baseKind int

const (
	baseStem baseKind = iota
	baseInfinitive
	// baseInfinitiveDropE strips a trailing "e" first (attendre -> attendr-).
	baseInfinitiveDropE
)

type pattern struct {
	base     baseKind
	suffixes entity.Forms
}

func stemPattern(s ...string) pattern     { return pattern{base: baseStem, suffixes: forms(s...)} }
func infPattern(s ...string) pattern      { return pattern{base: baseInfinitive, suffixes: forms(s...)} }
func infDropEPattern(s ...string) pattern { return pattern{base: baseInfinitiveDropE, suffixes: forms(s...)} }

// forms panics on a wrong arity so a malformed table fails at package init.
func forms(s ...string) entity.Forms {
	if len(s) != entity.SlotCount {
		panic("conjugation: form list must have exactly six entries")
	}
	var f entity.Forms
	copy(f[:], s)
	return f
}

var (
	spanishFuture      = []string{"é", "ás", "á", "emos", "éis", "án"}
	spanishConditional = []string{"ía", "ías", "ía", "íamos", "íais", "ían"}
	frenchFuture       = []string{"ai", "as", "a", "ons", "ez", "ont"}
	frenchConditional  = []string{"ais", "ais", "ait", "ions", "iez", "aient"}
)

// endingTable is language -> group -> tense -> pattern.
var endingTable = map[entity.Language]map[Group]map[entity.Tense]pattern{
	entity.LanguageSpanish: {
		GroupAR: {
			entity.TensePresent:     stemPattern("o", "as", "a", "amos", "áis", "an"),
			entity.TensePreterite:   stemPattern("é", "aste", "ó", "amos", "asteis", "aron"),
			entity.TenseImperfect:   stemPattern("aba", "abas", "aba", "ábamos", "abais", "aban"),
			entity.TenseFuture:      infPattern(spanishFuture...),
			entity.TenseConditional: infPattern(spanishConditional...),
		},
		GroupER: {
			entity.TensePresent:     stemPattern("o", "es", "e", "emos", "éis", "en"),
			entity.TensePreterite:   stemPattern("í", "iste", "ió", "imos", "isteis", "ieron"),
			entity.TenseImperfect:   stemPattern("ía", "ías", "ía", "íamos", "íais", "ían"),
			entity.TenseFuture:      infPattern(spanishFuture...),
			entity.TenseConditional: infPattern(spanishConditional...),
		},
		GroupIR: {
			entity.TensePresent:     stemPattern("o", "es", "e", "imos", "ís", "en"),
			entity.TensePreterite:   stemPattern("í", "iste", "ió", "imos", "isteis", "ieron"),
			entity.TenseImperfect:   stemPattern("ía", "ías", "ía", "íamos", "íais", "ían"),
			entity.TenseFuture:      infPattern(spanishFuture...),
			entity.TenseConditional: infPattern(spanishConditional...),
		},
	},
	// French preterite is built by the compound constructor, not from suffixes.
	entity.LanguageFrench: {
		GroupER: {
			entity.TensePresent:     stemPattern("e", "es", "e", "ons", "ez", "ent"),
			entity.TenseImperfect:   stemPattern("ais", "ais", "ait", "ions", "iez", "aient"),
			entity.TenseFuture:      infPattern(frenchFuture...),
			entity.TenseConditional: infPattern(frenchConditional...),
		},
		GroupIR: {
			entity.TensePresent:     stemPattern("is", "is", "it", "issons", "issez", "issent"),
			entity.TenseImperfect:   stemPattern("issais", "issais", "issait", "issions", "issiez", "issaient"),
			entity.TenseFuture:      infPattern(frenchFuture...),
			entity.TenseConditional: infPattern(frenchConditional...),
		},
		GroupRE: {
			entity.TensePresent:     stemPattern("s", "s", "", "ons", "ez", "ent"),
			entity.TenseImperfect:   stemPattern("ais", "ais", "ait", "ions", "iez", "aient"),
			entity.TenseFuture:      infDropEPattern(frenchFuture...),
			entity.TenseConditional: infDropEPattern(frenchConditional...),
		},
	},
	entity.LanguageGerman: {
		GroupEN: {
			entity.TensePresent:   stemPattern("e", "st", "t", "en", "t", "en"),
			entity.TensePreterite: stemPattern("te", "test", "te", "ten", "tet", "ten"),
		},
		GroupLN: {
			entity.TensePresent:   stemPattern("e", "st", "t", "n", "t", "n"),
			entity.TensePreterite: stemPattern("te", "test", "te", "ten", "tet", "ten"),
		},
		GroupRN: {
			entity.TensePresent:   stemPattern("e", "st", "t", "n", "t", "n"),
			entity.TensePreterite: stemPattern("te", "test", "te", "ten", "tet", "ten"),
		},
	},
}
