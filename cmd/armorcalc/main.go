// armorcalc resolves tank gun impacts against armor from the command line.
//
// The ammunition and armor catalogs, environmental defaults and the session
// database are configured through armorcalc.cfg.json; every impact of a run
// is recorded as one session.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	armorcalc "github.com/gehtsoft-usa/go_armorcalc"
	"github.com/gehtsoft-usa/go_armorcalc/internal/config"
	"github.com/gehtsoft-usa/go_armorcalc/internal/logging"
	"github.com/gehtsoft-usa/go_armorcalc/internal/storage"
)

func main() {
	configDir := flag.String("config", ".", "directory containing armorcalc.cfg.json")
	ammoName := flag.String("ammo", "m829a4", "ammunition preset name")
	armorName := flag.String("armor", "rha200", "armor preset name")
	rangeM := flag.Float64("range", 2000, "engagement range in meters")
	angleDeg := flag.Float64("angle", 0, "impact angle from the plate normal in degrees")
	hits := flag.Int("hits", 1, "number of sequential hits on the same plate")
	useEnvironment := flag.Bool("env", false, "integrate the trajectory through the configured atmosphere")
	ambient := flag.Float64("ambient", 15, "ambient temperature in °C for the temperature stage")
	propellant := flag.String("propellant", "", "propellant kind (single, double, triple); empty skips the temperature stage")
	slope := flag.Float64("slope", -1, "constructive armor slope in degrees; negative skips the ricochet stage")
	roughness := flag.Float64("roughness", 0.5, "armor surface roughness 0..1 for the ricochet stage")
	list := flag.Bool("list", false, "list the configured presets and exit")
	flag.Parse()

	if err := config.Load(*configDir); err != nil {
		fmt.Fprintf(os.Stderr, "armorcalc: %v\n", err)
		os.Exit(1)
	}

	logFile, err := logging.Setup(config.GetString("logsDir"), config.GetString("logLevel"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "armorcalc: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()
	log := logging.Logger

	if *list {
		printCatalogs()
		return
	}

	ammo, err := config.BuildAmmunition(*ammoName)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to build ammunition")
	}
	armor, err := config.BuildArmor(*armorName)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to build armor")
	}

	var atmosphere *armorcalc.Atmosphere
	if *useEnvironment {
		built, err := config.BuildAtmosphere()
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to build atmosphere")
		}
		atmosphere = &built
	}

	var propellantKind byte
	var conditions *armorcalc.TemperatureConditions
	if *propellant != "" {
		switch strings.ToLower(*propellant) {
		case "single":
			propellantKind = armorcalc.PropellantSingleBase
		case "double":
			propellantKind = armorcalc.PropellantDoubleBase
		case "triple":
			propellantKind = armorcalc.PropellantTripleBase
		default:
			log.Fatal().Str("propellant", *propellant).Msg("Unknown propellant kind")
		}
		built, err := armorcalc.CreateUniformTemperatureConditions(*ambient, config.GetFloat("atmosphere.humidity"))
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to build temperature conditions")
		}
		conditions = &built
	}

	var ricochet *armorcalc.RicochetParameters
	if *slope >= 0 {
		built, err := armorcalc.CreateRicochetParameters(*angleDeg, *slope, *roughness)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to build ricochet parameters")
		}
		ricochet = &built
	}

	var store *storage.Store
	var sessionID uint
	if cfg := config.GetStorageConfig(); cfg.Enabled {
		store, err = storage.Open(cfg.Path, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to open session DB")
		}
		defer store.Close()

		sessionID, err = store.StartSession(
			fmt.Sprintf("%s vs %s", ammo.Name(), armor.Name()), ammo.Name(), armor.Name())
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to start session")
		}
	}

	printHeader(ammo, armor, *rangeM, *angleDeg)

	for hit := 0; hit < *hits; hit++ {
		outcome, err := armorcalc.ResolveImpact(ammo, armor, *rangeM, *angleDeg,
			atmosphere, propellantKind, conditions, ricochet)
		if err != nil {
			log.Fatal().Err(err).Int("hit", hit+1).Msg("Impact resolution failed")
		}

		printOutcome(hit+1, outcome)
		log.Info().
			Int("hit", hit+1).
			Float64("penetration", outcome.FinalPenetration).
			Float64("effectiveThickness", outcome.EffectiveThickness).
			Bool("penetrates", outcome.Penetrates).
			Strs("degradedStages", outcome.DegradedStages).
			Msg("Impact resolved")

		event := armor.ApplyImpactDamage(outcome, 0, 0, float64(hit))

		if store != nil {
			if err := store.RecordImpact(sessionID, outcome); err != nil {
				log.Error().Err(err).Msg("Failed to record impact")
			}
			if err := store.RecordDamage(sessionID, event, armor.Damage().Summary()); err != nil {
				log.Error().Err(err).Msg("Failed to record damage")
			}
		}
	}

	if *hits > 1 {
		printDamageSummary(armor)
	}
}

func printCatalogs() {
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println("AMMUNITION CATALOG")
	fmt.Println(strings.Repeat("=", 60))
	for _, name := range config.AmmunitionPresets() {
		ammo, err := config.BuildAmmunition(name)
		if err != nil {
			continue
		}
		fmt.Printf("\n%s:\n", name)
		fmt.Printf("  Type: %s\n", strings.ToUpper(armorcalc.CategoryName(ammo.Category())))
		fmt.Printf("  Caliber: %.0fmm\n", ammo.Caliber())
		fmt.Printf("  Mass: %.2fkg\n", ammo.Mass())
		fmt.Printf("  Muzzle Velocity: %.0f m/s\n", ammo.MuzzleVelocity())
		fmt.Printf("  Kinetic Energy: %.0f kJ\n", ammo.KineticEnergy()/1000)
	}

	fmt.Println("\n" + strings.Repeat("=", 60))
	fmt.Println("ARMOR CATALOG")
	fmt.Println(strings.Repeat("=", 60))
	for _, name := range config.ArmorPresets() {
		armor, err := config.BuildArmor(name)
		if err != nil {
			continue
		}
		fmt.Printf("\n%s:\n", name)
		fmt.Printf("  Thickness: %.0fmm\n", armor.Thickness())
		fmt.Printf("  Density: %.0f kg/m³\n", armor.Density())
		fmt.Printf("  Mass per Area: %.1f kg/m²\n", armor.MassPerArea())
	}
}

func printHeader(ammo armorcalc.Ammunition, armor armorcalc.Armor, rangeM, angleDeg float64) {
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println("PENETRATION TEST RESULTS")
	fmt.Println(strings.Repeat("=", 60))

	fmt.Printf("\nAMMUNITION: %s\n", ammo.Name())
	fmt.Printf("  Type: %s\n", strings.ToUpper(armorcalc.CategoryName(ammo.Category())))
	fmt.Printf("  Caliber: %.0fmm\n", ammo.Caliber())
	fmt.Printf("  Muzzle Velocity: %.0f m/s\n", ammo.MuzzleVelocity())
	fmt.Printf("  Mass: %.2f kg\n", ammo.Mass())

	fmt.Printf("\nARMOR: %s\n", armor.Name())
	fmt.Printf("  Thickness: %.0fmm\n", armor.Thickness())
	fmt.Printf("  Density: %.0f kg/m³\n", armor.Density())

	fmt.Printf("\nENGAGEMENT:\n")
	fmt.Printf("  Range: %.0f m\n", rangeM)
	fmt.Printf("  Impact Angle: %.0f°\n", angleDeg)
}

func printOutcome(hit int, outcome armorcalc.ImpactOutcome) {
	fmt.Printf("\nHIT %d:\n", hit)
	fmt.Printf("  Velocity at Range: %.1f m/s\n", outcome.ImpactVelocity)
	fmt.Printf("  Penetration Capability: %.1fmm RHA\n", outcome.FinalPenetration)
	fmt.Printf("  Effective Armor Thickness: %.1fmm RHA\n", outcome.EffectiveThickness)
	if len(outcome.DegradedStages) > 0 {
		fmt.Printf("  Skipped Stages: %s\n", strings.Join(outcome.DegradedStages, ", "))
	}

	if outcome.Penetrates {
		fmt.Println("  RESULT: PROJECTILE PENETRATES ARMOR")
		fmt.Printf("  Overmatch: %.1fmm RHA\n", outcome.OvermatchMM)
		fmt.Printf("  Spall Mass: %.3f kg at %.0f m/s, cone %.0f°\n",
			outcome.BehindArmor.SpallMassKg,
			outcome.BehindArmor.FragmentVelocity,
			outcome.BehindArmor.DamageConeAngle)
	} else {
		fmt.Println("  RESULT: ARMOR DEFEATS PROJECTILE")
		fmt.Printf("  Safety Margin: %.1fmm RHA\n", -outcome.OvermatchMM)
	}
}

func printDamageSummary(armor armorcalc.Armor) {
	summary := armor.Damage().Summary()

	fmt.Println("\n" + strings.Repeat("=", 60))
	fmt.Println("ARMOR CONDITION")
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("  Impacts: %d (%d penetrations, %.0f%%)\n",
		summary.TotalImpacts, summary.SuccessfulPenetrations, summary.PenetrationRate*100)
	fmt.Printf("  Integrity: %.1f%%\n", summary.Condition.IntegrityPercent)
	fmt.Printf("  Thickness Remaining: %.1fmm (%.1f%% lost)\n",
		summary.Condition.ThicknessRemaining, summary.ThicknessLossPercent)
	fmt.Printf("  Status: %s\n", armorcalc.StatusName(summary.Status))
}
