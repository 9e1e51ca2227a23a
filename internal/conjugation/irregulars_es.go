package conjugation

import "github.com/eslsoft/conjugator/internal/entity"

var spanishIrregulars = map[string]irregularEntry{
	"ser": {
		entity.TensePresent:   forms("soy", "eres", "es", "somos", "sois", "son"),
		entity.TensePreterite: forms("fui", "fuiste", "fue", "fuimos", "fuisteis", "fueron"),
		entity.TenseImperfect: forms("era", "eras", "era", "éramos", "erais", "eran"),
	},
	"estar": {
		entity.TensePresent:   forms("estoy", "estás", "está", "estamos", "estáis", "están"),
		entity.TensePreterite: forms("estuve", "estuviste", "estuvo", "estuvimos", "estuvisteis", "estuvieron"),
	},
	"ir": {
		entity.TensePresent:     forms("voy", "vas", "va", "vamos", "vais", "van"),
		entity.TensePreterite:   forms("fui", "fuiste", "fue", "fuimos", "fuisteis", "fueron"),
		entity.TenseImperfect:   forms("iba", "ibas", "iba", "íbamos", "ibais", "iban"),
		// "ir" is too short to classify, so the regular tenses are listed too.
		entity.TenseFuture:      withEndings("ir", spanishFuture),
		entity.TenseConditional: withEndings("ir", spanishConditional),
	},
	"tener": {
		entity.TensePresent:     forms("tengo", "tienes", "tiene", "tenemos", "tenéis", "tienen"),
		entity.TensePreterite:   forms("tuve", "tuviste", "tuvo", "tuvimos", "tuvisteis", "tuvieron"),
		entity.TenseFuture:      withEndings("tendr", spanishFuture),
		entity.TenseConditional: withEndings("tendr", spanishConditional),
	},
	"hacer": {
		entity.TensePresent:     forms("hago", "haces", "hace", "hacemos", "hacéis", "hacen"),
		entity.TensePreterite:   forms("hice", "hiciste", "hizo", "hicimos", "hicisteis", "hicieron"),
		entity.TenseFuture:      withEndings("har", spanishFuture),
		entity.TenseConditional: withEndings("har", spanishConditional),
	},
	"haber": {
		entity.TensePresent:     forms("he", "has", "ha", "hemos", "habéis", "han"),
		entity.TensePreterite:   forms("hube", "hubiste", "hubo", "hubimos", "hubisteis", "hubieron"),
		entity.TenseFuture:      withEndings("habr", spanishFuture),
		entity.TenseConditional: withEndings("habr", spanishConditional),
	},
	"poder": {
		entity.TensePresent:     forms("puedo", "puedes", "puede", "podemos", "podéis", "pueden"),
		entity.TensePreterite:   forms("pude", "pudiste", "pudo", "pudimos", "pudisteis", "pudieron"),
		entity.TenseFuture:      withEndings("podr", spanishFuture),
		entity.TenseConditional: withEndings("podr", spanishConditional),
	},
	"decir": {
		entity.TensePresent:     forms("digo", "dices", "dice", "decimos", "decís", "dicen"),
		entity.TensePreterite:   forms("dije", "dijiste", "dijo", "dijimos", "dijisteis", "dijeron"),
		entity.TenseFuture:      withEndings("dir", spanishFuture),
		entity.TenseConditional: withEndings("dir", spanishConditional),
	},
	"querer": {
		entity.TensePresent:     forms("quiero", "quieres", "quiere", "queremos", "queréis", "quieren"),
		entity.TensePreterite:   forms("quise", "quisiste", "quiso", "quisimos", "quisisteis", "quisieron"),
		entity.TenseFuture:      withEndings("querr", spanishFuture),
		entity.TenseConditional: withEndings("querr", spanishConditional),
	},
	"saber": {
		entity.TensePresent:     forms("sé", "sabes", "sabe", "sabemos", "sabéis", "saben"),
		entity.TensePreterite:   forms("supe", "supiste", "supo", "supimos", "supisteis", "supieron"),
		entity.TenseFuture:      withEndings("sabr", spanishFuture),
		entity.TenseConditional: withEndings("sabr", spanishConditional),
	},
	"venir": {
		entity.TensePresent:     forms("vengo", "vienes", "viene", "venimos", "venís", "vienen"),
		entity.TensePreterite:   forms("vine", "viniste", "vino", "vinimos", "vinisteis", "vinieron"),
		entity.TenseFuture:      withEndings("vendr", spanishFuture),
		entity.TenseConditional: withEndings("vendr", spanishConditional),
	},
	"poner": {
		entity.TensePresent:     forms("pongo", "pones", "pone", "ponemos", "ponéis", "ponen"),
		entity.TensePreterite:   forms("puse", "pusiste", "puso", "pusimos", "pusisteis", "pusieron"),
		entity.TenseFuture:      withEndings("pondr", spanishFuture),
		entity.TenseConditional: withEndings("pondr", spanishConditional),
	},
	"dar": {
		entity.TensePresent:   forms("doy", "das", "da", "damos", "dais", "dan"),
		entity.TensePreterite: forms("di", "diste", "dio", "dimos", "disteis", "dieron"),
	},
	"ver": {
		entity.TensePresent:   forms("veo", "ves", "ve", "vemos", "veis", "ven"),
		entity.TensePreterite: forms("vi", "viste", "vio", "vimos", "visteis", "vieron"),
		entity.TenseImperfect: forms("veía", "veías", "veía", "veíamos", "veíais", "veían"),
	},
	"salir": {
		entity.TensePresent:     forms("salgo", "sales", "sale", "salimos", "salís", "salen"),
		entity.TenseFuture:      withEndings("saldr", spanishFuture),
		entity.TenseConditional: withEndings("saldr", spanishConditional),
	},
}
