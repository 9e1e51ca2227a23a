package conjugation

import "github.com/eslsoft/conjugator/internal/entity"

var germanIrregulars = map[string]irregularEntry{
	"sein": {
		entity.TensePresent:   forms("bin", "bist", "ist", "sind", "seid", "sind"),
		entity.TensePreterite: forms("war", "warst", "war", "waren", "wart", "waren"),
	},
	"tun": {
		entity.TensePresent:   forms("tue", "tust", "tut", "tun", "tut", "tun"),
		entity.TensePreterite: forms("tat", "tatst", "tat", "taten", "tatet", "taten"),
	},
	"haben": {
		entity.TensePresent:   forms("habe", "hast", "hat", "haben", "habt", "haben"),
		entity.TensePreterite: forms("hatte", "hattest", "hatte", "hatten", "hattet", "hatten"),
	},
	"werden": {
		entity.TensePresent:   forms("werde", "wirst", "wird", "werden", "werdet", "werden"),
		entity.TensePreterite: forms("wurde", "wurdest", "wurde", "wurden", "wurdet", "wurden"),
	},
	"gehen": {
		entity.TensePreterite: forms("ging", "gingst", "ging", "gingen", "gingt", "gingen"),
	},
	"kommen": {
		entity.TensePreterite: forms("kam", "kamst", "kam", "kamen", "kamt", "kamen"),
	},
	"sehen": {
		entity.TensePresent:   forms("sehe", "siehst", "sieht", "sehen", "seht", "sehen"),
		entity.TensePreterite: forms("sah", "sahst", "sah", "sahen", "saht", "sahen"),
	},
	"geben": {
		entity.TensePresent:   forms("gebe", "gibst", "gibt", "geben", "gebt", "geben"),
		entity.TensePreterite: forms("gab", "gabst", "gab", "gaben", "gabt", "gaben"),
	},
	"fahren": {
		entity.TensePresent:   forms("fahre", "fährst", "fährt", "fahren", "fahrt", "fahren"),
		entity.TensePreterite: forms("fuhr", "fuhrst", "fuhr", "fuhren", "fuhrt", "fuhren"),
	},
	"essen": {
		entity.TensePresent:   forms("esse", "isst", "isst", "essen", "esst", "essen"),
		entity.TensePreterite: forms("aß", "aßt", "aß", "aßen", "aßt", "aßen"),
	},
	"können": {
		entity.TensePresent:   forms("kann", "kannst", "kann", "können", "könnt", "können"),
		entity.TensePreterite: forms("konnte", "konntest", "konnte", "konnten", "konntet", "konnten"),
	},
	"müssen": {
		entity.TensePresent:   forms("muss", "musst", "muss", "müssen", "müsst", "müssen"),
		entity.TensePreterite: forms("musste", "musstest", "musste", "mussten", "musstet", "mussten"),
	},
	"wissen": {
		entity.TensePresent:   forms("weiß", "weißt", "weiß", "wissen", "wisst", "wissen"),
		entity.TensePreterite: forms("wusste", "wusstest", "wusste", "wussten", "wusstet", "wussten"),
	},
	"arbeiten": {
		entity.TensePresent:   forms("arbeite", "arbeitest", "arbeitet", "arbeiten", "arbeitet", "arbeiten"),
		entity.TensePreterite: forms("arbeitete", "arbeitetest", "arbeitete", "arbeiteten", "arbeitetet", "arbeiteten"),
	},
}
