package go_armorcalc

import (
	"fmt"
	"math"

	"github.com/gehtsoft-usa/go_armorcalc/bmath/vector"
)

const cStandardTemperatureC float64 = 15.0
const cStandardPressureKPa float64 = 101.325
const cStandardHumidityPercent float64 = 50.0
const cSeaLevelAirDensity float64 = 1.225 //kg/m³ at 15°C, 101.325 kPa
const cGravity float64 = 9.80665          //m/s²
const cDryAirGasConstant float64 = 287.058
const cKelvinOffset float64 = 273.15

//barometric approximation coefficients for the standard atmosphere
const cBarometricLapse float64 = 2.25577e-5
const cBarometricExponent float64 = 5.25588

//linear humidity correction to density
const cHumidityDensityCoefficient float64 = 0.378

//Atmosphere describes the environmental conditions of an engagement.
//
//The structure is a value type constructed per calculation. Air density is
//computed once at construction.
type Atmosphere struct {
	temperature float64 //°C
	pressure    float64 //kPa
	humidity    float64 //percent 0..100
	altitude    float64 //m over sea level
	windSpeed   float64 //m/s, positive is a headwind
	windAngle   float64 //degrees relative to the trajectory plane
	density     float64 //kg/m³, cached
}

//CreateDefaultAtmosphere creates the standard atmosphere all penetration
//figures are referenced to: 15°C, 101.325 kPa, 50% humidity, sea level, calm
func CreateDefaultAtmosphere() Atmosphere {
	a := Atmosphere{
		temperature: cStandardTemperatureC,
		pressure:    cStandardPressureKPa,
		humidity:    cStandardHumidityPercent,
	}
	a.calculate()
	return a
}

//CreateAtmosphere creates an atmosphere with the specified parameters
func CreateAtmosphere(temperatureC, pressureKPa, humidityPercent, altitudeM, windSpeedMS, windAngleDeg float64) (Atmosphere, error) {
	if pressureKPa <= 0 {
		return CreateDefaultAtmosphere(), fmt.Errorf("Atmosphere: pressure must be greater than zero")
	}
	if humidityPercent < 0 || humidityPercent > 100 {
		return CreateDefaultAtmosphere(), fmt.Errorf("Atmosphere: humidity must be in 0..100 range")
	}
	if temperatureC < -cKelvinOffset {
		return CreateDefaultAtmosphere(), fmt.Errorf("Atmosphere: temperature below absolute zero")
	}
	if windSpeedMS < 0 {
		return CreateDefaultAtmosphere(), fmt.Errorf("Atmosphere: wind speed must not be negative")
	}
	a := Atmosphere{
		temperature: temperatureC,
		pressure:    pressureKPa,
		humidity:    humidityPercent,
		altitude:    altitudeM,
		windSpeed:   windSpeedMS,
		windAngle:   windAngleDeg,
	}
	a.calculate()
	return a, nil
}

//Temperature returns the air temperature in °C
func (a Atmosphere) Temperature() float64 {
	return a.temperature
}

//Pressure returns the station pressure in kPa
func (a Atmosphere) Pressure() float64 {
	return a.pressure
}

//Humidity returns the relative humidity in percent (0..100)
func (a Atmosphere) Humidity() float64 {
	return a.humidity
}

//Altitude returns the altitude over sea level in m
func (a Atmosphere) Altitude() float64 {
	return a.altitude
}

//WindSpeed returns the wind speed in m/s
func (a Atmosphere) WindSpeed() float64 {
	return a.windSpeed
}

//WindAngle returns the wind direction in degrees relative to the trajectory
func (a Atmosphere) WindAngle() float64 {
	return a.windAngle
}

//AirDensity returns the air density in kg/m³ for these conditions
func (a Atmosphere) AirDensity() float64 {
	return a.density
}

//DensityRatio returns the air density relative to the sea-level standard
func (a Atmosphere) DensityRatio() float64 {
	return a.density / cSeaLevelAirDensity
}

func (a Atmosphere) String() string {
	return fmt.Sprintf("Temperature:%.1f°C,Pressure:%.2fkPa,Humidity:%.0f%%,Altitude:%.0fm,Wind:%.1fm/s@%.0f°",
		a.temperature, a.pressure, a.humidity, a.altitude, a.windSpeed, a.windAngle)
}

//air density from the ideal gas law with a barometric altitude correction
//and a linear humidity correction
func (a *Atmosphere) calculate() {
	temperatureK := a.temperature + cKelvinOffset
	pressurePa := a.pressure * 1000
	if a.altitude > 0 {
		pressurePa *= math.Pow(1-cBarometricLapse*a.altitude, cBarometricExponent)
	}
	humidityFactor := 1.0 - cHumidityDensityCoefficient*(a.humidity/100.0)*0.01
	a.density = (pressurePa * humidityFactor) / (cDryAirGasConstant * temperatureK)
}

//windVector returns the wind as a velocity vector in the trajectory frame.
//A positive wind speed at angle zero opposes the projectile motion.
func (a Atmosphere) windVector() vector.Vector {
	angle := a.windAngle * math.Pi / 180
	return vector.Create(-a.windSpeed*math.Cos(angle), -a.windSpeed*math.Sin(angle), 0)
}
