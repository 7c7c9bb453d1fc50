package booking

import (
	"time"

	"go.uber.org/zap"
)

// LocatorSpec names one logical UI target and carries the candidate selector
// expressions that can reach it, in order of preference. The booking page's
// markup is not a stable contract, so most targets carry more than one
// strategy: a structural match first, then text or ARIA fallbacks.
type LocatorSpec struct {
	Name       string
	Candidates []string
}

// locatorRegistry maps every logical control of the booking form to its
// LocatorSpec. Built once per page object and immutable afterwards.
type locatorRegistry struct {
	tripTypeDropdown  LocatorSpec
	tripTypeOneWay    LocatorSpec
	tripTypeRoundTrip LocatorSpec

	departureLocationField LocatorSpec
	arrivalLocationField   LocatorSpec
	locationSearchInput    LocatorSpec
	locationSuggestion     LocatorSpec

	travelDatesField LocatorSpec
	dialogConfirm    LocatorSpec
	datePickerClose  LocatorSpec

	passengerField LocatorSpec
	adultPlus      LocatorSpec
	adultMinus     LocatorSpec
	infantPlus     LocatorSpec
	infantMinus    LocatorSpec
	adultInput     LocatorSpec
	infantInput    LocatorSpec

	validationMessage       LocatorSpec
	adultValidationMessage  LocatorSpec
	infantValidationMessage LocatorSpec
	errorRegion             LocatorSpec
	loadingIndicator        LocatorSpec

	searchFlights        LocatorSpec
	flightSelectionsPage LocatorSpec
}

func newLocatorRegistry() *locatorRegistry {
	return &locatorRegistry{
		tripTypeDropdown: LocatorSpec{
			Name:       "trip type dropdown toggle",
			Candidates: []string{"#trip-type-toggle-button"},
		},
		tripTypeOneWay: LocatorSpec{
			Name:       "one way label",
			Candidates: []string{"//label[contains(text(),'One way')]"},
		},
		tripTypeRoundTrip: LocatorSpec{
			Name:       "return label",
			Candidates: []string{"//label[contains(text(),'Return')]"},
		},

		departureLocationField: LocatorSpec{
			Name: "departure location field",
			Candidates: []string{
				"//div[contains(@class,'runway-popup-field__placeholder') and contains(text(),'departure')]",
				"//div[contains(text(),'Select departure location')]",
			},
		},
		arrivalLocationField: LocatorSpec{
			Name: "arrival location field",
			Candidates: []string{
				"//div[contains(@class,'runway-popup-field__placeholder') and contains(text(),'arrival')]",
				"//div[contains(text(),'Select arrival location')]",
			},
		},
		locationSearchInput: LocatorSpec{
			Name: "location search input",
			Candidates: []string{
				"input[type='text']:visible, input[placeholder*='search']:visible, input[placeholder*='location']:visible, input[placeholder*='city']:visible",
			},
		},
		locationSuggestion: LocatorSpec{
			Name: "first location suggestion",
			Candidates: []string{
				"//li[contains(@class,'suggestion') or contains(@class,'option') or contains(@class,'result')][1] | //div[contains(@class,'suggestion') or contains(@class,'option') or contains(@class,'result')][1]",
			},
		},

		travelDatesField: LocatorSpec{
			Name:       "travel dates field",
			Candidates: []string{"//div[contains(text(),'Select travel dates')]"},
		},
		dialogConfirm: LocatorSpec{
			Name:       "dialog confirmation button",
			Candidates: []string{"//button[@data-testid='dialogConfirmation']"},
		},
		datePickerClose: LocatorSpec{
			Name:       "date picker close glyph",
			Candidates: []string{"//path[@d='M-5-5h24v24H-5z']/parent::*"},
		},

		passengerField: LocatorSpec{
			Name:       "passenger field",
			Candidates: []string{"//span[contains(text(),'Select Passengers')]"},
		},
		adultPlus: LocatorSpec{
			Name: "adult increment",
			Candidates: []string{
				"//div[@data-testid='adults']//span[@class='rc-input-number-handler rc-input-number-handler-up']",
				"//span[contains(@aria-label,'Increase Value') and ancestor::div[@data-testid='adults']]",
			},
		},
		adultMinus: LocatorSpec{
			Name: "adult decrement",
			Candidates: []string{
				"//div[@data-testid='adults']//span[@class='rc-input-number-handler rc-input-number-handler-down']",
				"//span[contains(@aria-label,'Decrease Value') and ancestor::div[@data-testid='adults']]",
			},
		},
		infantPlus: LocatorSpec{
			Name: "infant increment",
			Candidates: []string{
				"//div[@data-testid='infants']//span[@class='rc-input-number-handler rc-input-number-handler-up']",
				"//span[contains(@aria-label,'Increase Value') and ancestor::div[@data-testid='infants']]",
			},
		},
		infantMinus: LocatorSpec{
			Name: "infant decrement",
			Candidates: []string{
				"//div[@data-testid='infants']//span[@class='rc-input-number-handler rc-input-number-handler-down']",
				"//span[contains(@aria-label,'Decrease Value') and ancestor::div[@data-testid='infants']]",
			},
		},
		adultInput: LocatorSpec{
			Name:       "adult count input",
			Candidates: []string{"#adults"},
		},
		infantInput: LocatorSpec{
			Name:       "infant count input",
			Candidates: []string{"#infants"},
		},

		validationMessage: LocatorSpec{
			Name:       "validation message",
			Candidates: []string{"//span[contains(@class,'ValidationMessages')]//div"},
		},
		adultValidationMessage: LocatorSpec{
			Name:       "adult validation message",
			Candidates: []string{"//div[@data-testid='adults']//span[contains(@class,'ValidationMessages')]//div"},
		},
		infantValidationMessage: LocatorSpec{
			Name:       "infant validation message",
			Candidates: []string{"//div[@data-testid='infants']//span[contains(@class,'ValidationMessages')]//div"},
		},
		errorRegion: LocatorSpec{
			Name:       "generic error region",
			Candidates: []string{"//div[contains(@class,'error') or contains(@class,'message')]"},
		},
		loadingIndicator: LocatorSpec{
			Name:       "loading indicator",
			Candidates: []string{"//div[contains(@class,'loading') or contains(@class,'spinner')]"},
		},

		searchFlights: LocatorSpec{
			Name:       "search flights button",
			Candidates: []string{"//button[@type='submit' and contains(text(),'SEARCH FLIGHTS')]"},
		},
		flightSelectionsPage: LocatorSpec{
			Name: "flight selection page indicator",
			Candidates: []string{
				"//h1[contains(text(),'Select') or contains(text(),'Flight')]",
				"//div[contains(@class,'flight-results')]",
				"//button[contains(text(),'Select') and contains(text(),'flight')]",
			},
		},
	}
}

// resolve walks the spec's candidates in declaration order and returns the
// first element that becomes visible within timeout per candidate. The bool
// reports whether any candidate matched.
func (p *Page) resolve(spec LocatorSpec, timeout time.Duration) (Element, bool) {
	for _, selector := range spec.Candidates {
		el := p.drv.Find(selector)
		if p.WaitVisible(el, timeout) {
			return el, true
		}
	}
	p.log.Debug("no locator candidate matched",
		zap.String("target", spec.Name),
		zap.Int("candidates", len(spec.Candidates)))
	return nil, false
}
