package phone_forward

import (
	"fmt"
	"math/rand"
	"strings"
)

const (
	numberMinLen      = 1
	numberMaxLen      = 12
	numberShortMaxLen = 3
	numberDigits      = "0123456789"
	numberSymbols     = "0123456789*#"
)

type numberClass int

const (
	numberClassMin numberClass = iota
	numberClassAny
	numberClassDigits
	numberClassShort
	numberClassService
	numberClassMax
)

type numberGenerator func(r *rand.Rand) string

var numberGenerators = []numberGenerator{
	numberClassAny:     getAnyNumber,
	numberClassDigits:  getDigitsNumber,
	numberClassShort:   getShortNumber,
	numberClassService: getServiceNumber,
}

// numberGen produces blocks of random phone numbers of one class.
// Used by tests and benchmarks.
type numberGen struct {
	block       []string
	count       int
	class       numberClass
	rand        *rand.Rand
	initialized bool
}

func newNumberGenerator(seed int64) *numberGen {
	return &numberGen{rand: rand.New(rand.NewSource(seed))}
}

func (ng *numberGen) initNumberBlock(blockCount int, class numberClass) error {
	if class <= numberClassMin || class >= numberClassMax {
		return fmt.Errorf("invalid number class %v", class)
	}

	if ng.initialized {
		return nil
	}

	ng.class = class
	ng.count = blockCount
	ng.block = make([]string, ng.count)

	generator := numberGenerators[class]
	for i := 0; i < blockCount; i++ {
		ng.block[i] = generator(ng.rand)
	}

	ng.initialized = true
	return nil
}

func genNumber(r *rand.Rand, minLen, maxLen int, alphabet string) string {
	n := minLen
	if maxLen > minLen {
		n += r.Intn(maxLen - minLen + 1)
	}

	var sb strings.Builder
	sb.Grow(n)
	for i := 0; i < n; i++ {
		sb.WriteByte(alphabet[r.Intn(len(alphabet))])
	}

	return sb.String()
}

func getAnyNumber(r *rand.Rand) string {
	return genNumber(r, numberMinLen, numberMaxLen, numberSymbols)
}

func getDigitsNumber(r *rand.Rand) string {
	return genNumber(r, numberMinLen, numberMaxLen, numberDigits)
}

// Short numbers collide often, which exercises replacing forwardings
func getShortNumber(r *rand.Rand) string {
	return genNumber(r, numberMinLen, numberShortMaxLen, "0123")
}

// Service numbers start with '*' and end with '#', like *100#
func getServiceNumber(r *rand.Rand) string {
	return "*" + genNumber(r, numberMinLen, numberShortMaxLen, numberDigits) + "#"
}

type numberValidator func(string) error

var numberValidators = []numberValidator{
	numberClassAny:     validateClassAny,
	numberClassDigits:  validateClassDigits,
	numberClassShort:   validateClassShort,
	numberClassService: validateClassService,
}

func (ng *numberGen) validateNumber(num string) error {
	if ng.class <= numberClassMin || ng.class >= numberClassMax {
		return fmt.Errorf("invalid number class %v", ng.class)
	}

	return numberValidators[ng.class](num)
}

func validateClassAny(num string) error {
	if !IsValidNumber(num) {
		return fmt.Errorf("invalid phone number %q", num)
	}

	if len(num) > numberMaxLen {
		return fmt.Errorf("phone number %q longer than %d", num, numberMaxLen)
	}

	return nil
}

func validateClassDigits(num string) error {
	if err := validateClassAny(num); err != nil {
		return err
	}

	if strings.Trim(num, numberDigits) != "" {
		return fmt.Errorf("phone number %q has non-digit symbols", num)
	}

	return nil
}

func validateClassShort(num string) error {
	if err := validateClassAny(num); err != nil {
		return err
	}

	if len(num) > numberShortMaxLen {
		return fmt.Errorf("phone number %q is not short", num)
	}

	return nil
}

func validateClassService(num string) error {
	if err := validateClassAny(num); err != nil {
		return err
	}

	if !strings.HasPrefix(num, "*") || !strings.HasSuffix(num, "#") {
		return fmt.Errorf("phone number %q is not a service number", num)
	}

	return validateClassDigits(num[1 : len(num)-1])
}
