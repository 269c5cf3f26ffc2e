package usecases

import "regexp"

// Default policy constants. Runtime values come from config.PolicyConfig;
// these are the platform defaults used in tests and seeding.
const (
	PlatformCurrency               = "tola_credit"
	DefaultCreatorRoyaltyPercent   = 5.0
	DefaultMaxArtistRoyaltyPercent = 15.0

	// TotalPercentTolerance absorbs floating point drift when checking the
	// stored total against creator + artist.
	TotalPercentTolerance = 0.01
)

var (
	// walletAddressPattern matches platform wallet addresses.
	walletAddressPattern = regexp.MustCompile(`^(TOLA|tola)[a-zA-Z0-9]{34,42}$`)
)

// prohibitedTerms is the static denylist screened against free-text inputs,
// matched case-insensitively as substrings.
var prohibitedTerms = []string{
	"hack", "exploit", "vulnerability", "malware", "phishing",
	"attack", "steal", "fraud", "illegal", "criminal",
}
