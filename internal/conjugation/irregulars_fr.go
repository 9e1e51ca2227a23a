package conjugation

import "github.com/eslsoft/conjugator/internal/entity"

// avoirInfinitive is the auxiliary used to build the French preterite.
const avoirInfinitive = "avoir"

var frenchIrregulars = map[string]irregularEntry{
	"être": {
		entity.TensePresent:     forms("suis", "es", "est", "sommes", "êtes", "sont"),
		entity.TensePreterite:   forms("ai été", "as été", "a été", "avons été", "avez été", "ont été"),
		entity.TenseImperfect:   forms("étais", "étais", "était", "étions", "étiez", "étaient"),
		entity.TenseFuture:      withEndings("ser", frenchFuture),
		entity.TenseConditional: withEndings("ser", frenchConditional),
	},
	avoirInfinitive: {
		entity.TensePresent:     forms("ai", "as", "a", "avons", "avez", "ont"),
		entity.TensePreterite:   forms("ai eu", "as eu", "a eu", "avons eu", "avez eu", "ont eu"),
		entity.TenseImperfect:   forms("avais", "avais", "avait", "avions", "aviez", "avaient"),
		entity.TenseFuture:      withEndings("aur", frenchFuture),
		entity.TenseConditional: withEndings("aur", frenchConditional),
	},
	"aller": {
		entity.TensePresent:     forms("vais", "vas", "va", "allons", "allez", "vont"),
		entity.TensePreterite:   forms("suis allé", "es allé", "est allé", "sommes allés", "êtes allés", "sont allés"),
		entity.TenseFuture:      withEndings("ir", frenchFuture),
		entity.TenseConditional: withEndings("ir", frenchConditional),
	},
	"faire": {
		entity.TensePresent:     forms("fais", "fais", "fait", "faisons", "faites", "font"),
		entity.TensePreterite:   forms("ai fait", "as fait", "a fait", "avons fait", "avez fait", "ont fait"),
		entity.TenseImperfect:   forms("faisais", "faisais", "faisait", "faisions", "faisiez", "faisaient"),
		entity.TenseFuture:      withEndings("fer", frenchFuture),
		entity.TenseConditional: withEndings("fer", frenchConditional),
	},
	"venir": {
		entity.TensePresent:     forms("viens", "viens", "vient", "venons", "venez", "viennent"),
		entity.TensePreterite:   forms("suis venu", "es venu", "est venu", "sommes venus", "êtes venus", "sont venus"),
		entity.TenseImperfect:   forms("venais", "venais", "venait", "venions", "veniez", "venaient"),
		entity.TenseFuture:      withEndings("viendr", frenchFuture),
		entity.TenseConditional: withEndings("viendr", frenchConditional),
	},
	"pouvoir": {
		entity.TensePresent:     forms("peux", "peux", "peut", "pouvons", "pouvez", "peuvent"),
		entity.TenseImperfect:   forms("pouvais", "pouvais", "pouvait", "pouvions", "pouviez", "pouvaient"),
		entity.TenseFuture:      withEndings("pourr", frenchFuture),
		entity.TenseConditional: withEndings("pourr", frenchConditional),
	},
	"vouloir": {
		entity.TensePresent:     forms("veux", "veux", "veut", "voulons", "voulez", "veulent"),
		entity.TenseImperfect:   forms("voulais", "voulais", "voulait", "voulions", "vouliez", "voulaient"),
		entity.TenseFuture:      withEndings("voudr", frenchFuture),
		entity.TenseConditional: withEndings("voudr", frenchConditional),
	},
	"voir": {
		entity.TensePresent:     forms("vois", "vois", "voit", "voyons", "voyez", "voient"),
		entity.TenseImperfect:   forms("voyais", "voyais", "voyait", "voyions", "voyiez", "voyaient"),
		entity.TenseFuture:      withEndings("verr", frenchFuture),
		entity.TenseConditional: withEndings("verr", frenchConditional),
	},
	"savoir": {
		entity.TensePresent:     forms("sais", "sais", "sait", "savons", "savez", "savent"),
		entity.TenseImperfect:   forms("savais", "savais", "savait", "savions", "saviez", "savaient"),
		entity.TenseFuture:      withEndings("saur", frenchFuture),
		entity.TenseConditional: withEndings("saur", frenchConditional),
	},
	"devoir": {
		entity.TensePresent:     forms("dois", "dois", "doit", "devons", "devez", "doivent"),
		entity.TenseImperfect:   forms("devais", "devais", "devait", "devions", "deviez", "devaient"),
		entity.TenseFuture:      withEndings("devr", frenchFuture),
		entity.TenseConditional: withEndings("devr", frenchConditional),
	},
	"prendre": {
		entity.TensePresent:   forms("prends", "prends", "prend", "prenons", "prenez", "prennent"),
		entity.TenseImperfect: forms("prenais", "prenais", "prenait", "prenions", "preniez", "prenaient"),
	},
	"dire": {
		entity.TensePresent:   forms("dis", "dis", "dit", "disons", "dites", "disent"),
		entity.TenseImperfect: forms("disais", "disais", "disait", "disions", "disiez", "disaient"),
	},
	"mettre": {
		entity.TensePresent: forms("mets", "mets", "met", "mettons", "mettez", "mettent"),
	},
}
