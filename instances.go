package ols

// Base URLs of public OLS deployments.
const (
	EBIOLS4    = "https://www.ebi.ac.uk/ols4/api/"
	EBIOLS3    = "https://www.ebi.ac.uk/ols/api/"
	TIB        = "https://service.tib.eu/ts4tib/api/"
	NFDI4ING   = "https://service.tib.eu/ts4ing/api/"
	NFDI4Chem  = "https://terminology.nfdi4chem.de/ts/api/"
	ZBMed      = "https://semanticlookup.zbmed.de/ols/api/"
	Monarch    = "https://ols.monarchinitiative.org/api/"
	Fraunhofer = "https://rohan.scai.fraunhofer.de/api/"
)

// Instances maps short names, as accepted by the CLI, to base URLs.
var Instances = map[string]string{
	"ebi":        EBIOLS4,
	"ebi-ols3":   EBIOLS3,
	"tib":        TIB,
	"nfdi4ing":   NFDI4ING,
	"nfdi4chem":  NFDI4Chem,
	"zbmed":      ZBMed,
	"monarch":    Monarch,
	"fraunhofer": Fraunhofer,
}
