package services

import "jobcard-backend/db/models"

// Fixed task catalogs for the standard service tiers. The tiers are
// cumulative: B extends A, C extends B, D extends C. Task order is the order
// the workshop sheets print in, so these slices are append-only.

var serviceATasks = []string{
	"Change engine oil",
	"Replace oil filter",
	"Check and top up coolant level",
	"Check and top up brake fluid",
	"Check and top up clutch fluid",
	"Check and top up power steering fluid",
	"Check and top up windscreen washer fluid",
	"Check battery terminals and electrolyte level",
	"Check alternator belt condition and tension",
	"Check air filter element",
	"Check fuel filter / water separator",
	"Drain water separator",
	"Check all lights and indicators",
	"Check horn operation",
	"Check wiper blades and washers",
	"Check warning lamps on dash",
	"Check tyre pressures",
	"Check tyre tread depth and wear pattern",
	"Torque wheel nuts",
	"Check brake pedal free play",
	"Check handbrake operation and travel",
	"Inspect brake pads / linings",
	"Inspect brake discs / drums",
	"Check brake hoses and pipes for leaks",
	"Check steering free play",
	"Check steering joints and linkages",
	"Check shock absorbers for leaks",
	"Check springs and suspension bushes",
	"Check exhaust system condition and mountings",
	"Check for engine oil leaks",
	"Check for gearbox oil leaks",
	"Check for differential oil leaks",
	"Check gearbox oil level",
	"Check differential oil level",
	"Grease propshaft universal joints",
	"Grease all lubrication points",
	"Check clutch operation",
	"Check doors, hinges and locks and lubricate",
	"Check mirrors and glass",
	"Check seat belts condition and operation",
	"Check fifth wheel / towbar coupling",
	"Check number plates and reflectors",
	"Road test vehicle",
	"Re-check fluid levels after road test",
	"Inspect for abnormal noises on road test",
	"Complete service sticker and records",
}

var serviceBExtras = []string{
	"Replace air filter element",
	"Replace fuel filter element",
	"Replace water separator element",
	"Rotate tyres",
	"Check wheel bearings for play",
	"Check engine breather system",
	"Check engine mountings",
	"Check radiator and intercooler fins",
}

var serviceCExtras = []string{
	"Replace engine coolant",
	"Flush and replace brake fluid",
	"Check and adjust valve clearances",
	"Check injectors / glow plugs",
	"Check turbocharger boost pipes and clamps",
	"Replace gearbox oil",
	"Replace differential oil",
	"Repack and adjust wheel bearings",
	"Check starter motor operation",
	"Carry out compression test",
	"Check chassis for cracks and corrosion",
}

var serviceDExtras = []string{
	"Replace drive belts",
	"Replace thermostat",
	"Replace coolant hoses as required",
	"Service air dryer unit",
	"Remove and clean fuel tank strainer",
	"Replace hydraulic fluids",
	"Full electrical system diagnostic scan",
}

// Trailer inspection sections. Stored flat; the section tag on each task is
// what display grouping and per-section progress are derived from.
const (
	SectionChassis    = "Chassis & Frame"
	SectionAxles      = "Axles, Wheels & Tyres"
	SectionBrakes     = "Brakes"
	SectionElectrical = "Electrical & Lights"
	SectionCoupling   = "Coupling & Landing Gear"
)

var TrailerSections = []string{
	SectionChassis,
	SectionAxles,
	SectionBrakes,
	SectionElectrical,
	SectionCoupling,
}

var trailerTasksBySection = map[string][]string{
	SectionChassis: {
		"Inspect main chassis rails for cracks",
		"Inspect cross members and gussets",
		"Check body mountings and floor condition",
		"Check side and rear underrun protection",
		"Check mudguards and spray suppression",
		"Check load restraint points",
	},
	SectionAxles: {
		"Check axle alignment",
		"Check U-bolts and spring seats",
		"Check spring packs and hangers",
		"Check wheel bearings for play and noise",
		"Check tyre pressures and tread depth",
		"Torque wheel nuts and check studs",
	},
	SectionBrakes: {
		"Check brake lining wear indicators",
		"Check brake drums / discs condition",
		"Check slack adjuster travel",
		"Check air lines and couplings for leaks",
		"Drain air tanks and check valves",
		"Test service and parking brake operation",
	},
	SectionElectrical: {
		"Check seven-pin connector and lead",
		"Check tail, stop and indicator lamps",
		"Check side marker lamps and reflectors",
		"Check number plate lamp",
		"Check wiring harness routing and chafing",
		"Check ABS / EBS warning operation",
	},
	SectionCoupling: {
		"Check kingpin / drawbar eye wear",
		"Check rubbing plate condition",
		"Check landing legs operation and mounting",
		"Check landing leg feet and braces",
		"Grease kingpin and landing gear",
		"Check safety chains and attachment points",
	},
}

// TaskNamesFor returns the catalog for a standard service tier. The "Other"
// checklist has no catalog, rows there are user supplied.
func TaskNamesFor(serviceType models.ServiceType) []string {
	switch serviceType {
	case models.ServiceA:
		return serviceATasks
	case models.ServiceB:
		return concatTaskLists(serviceATasks, serviceBExtras)
	case models.ServiceC:
		return concatTaskLists(serviceATasks, serviceBExtras, serviceCExtras)
	case models.ServiceD:
		return concatTaskLists(serviceATasks, serviceBExtras, serviceCExtras, serviceDExtras)
	default:
		return nil
	}
}

func concatTaskLists(lists ...[]string) []string {
	var out []string
	for _, l := range lists {
		out = append(out, l...)
	}
	return out
}
