// Home Assistant sensor device classes. The set mirrors
// https://github.com/home-assistant/core/blob/dev/homeassistant/const.py
package sensor

// DeviceClass is a Home Assistant sensor device class, serialized as its
// snake_case name.
type DeviceClass string

const (
	ClassDate                          DeviceClass = "date"
	ClassEnum                          DeviceClass = "enum"
	ClassTimestamp                     DeviceClass = "timestamp"
	ClassApparentPower                 DeviceClass = "apparent_power"
	ClassAqi                           DeviceClass = "aqi"
	ClassArea                          DeviceClass = "area"
	ClassAtmosphericPressure           DeviceClass = "atmospheric_pressure"
	ClassBattery                       DeviceClass = "battery"
	ClassBloodGlucoseConcentration     DeviceClass = "blood_glucose_concentration"
	ClassCarbonMonoxide                DeviceClass = "carbon_monoxide"
	ClassCarbonDioxide                 DeviceClass = "carbon_dioxide"
	ClassConductivity                  DeviceClass = "conductivity"
	ClassCurrent                       DeviceClass = "current"
	ClassDataRate                      DeviceClass = "data_rate"
	ClassDataSize                      DeviceClass = "data_size"
	ClassDistance                      DeviceClass = "distance"
	ClassDuration                      DeviceClass = "duration"
	ClassEnergy                        DeviceClass = "energy"
	ClassEnergyDistance                DeviceClass = "energy_distance"
	ClassEnergyStorage                 DeviceClass = "energy_storage"
	ClassFrequency                     DeviceClass = "frequency"
	ClassGas                           DeviceClass = "gas"
	ClassHumidity                      DeviceClass = "humidity"
	ClassIlluminance                   DeviceClass = "illuminance"
	ClassIrradiance                    DeviceClass = "irradiance"
	ClassMoisture                      DeviceClass = "moisture"
	ClassMonetary                      DeviceClass = "monetary"
	ClassNitrogenDioxide               DeviceClass = "nitrogen_dioxide"
	ClassNitrogenMonoxide              DeviceClass = "nitrogen_monoxide"
	ClassNitrousOxide                  DeviceClass = "nitrous_oxide"
	ClassOzone                         DeviceClass = "ozone"
	ClassPh                            DeviceClass = "ph"
	ClassPm1                           DeviceClass = "pm1"
	ClassPm10                          DeviceClass = "pm10"
	ClassPm25                          DeviceClass = "pm25"
	ClassPowerFactor                   DeviceClass = "power_factor"
	ClassPower                         DeviceClass = "power"
	ClassPrecipitation                 DeviceClass = "precipitation"
	ClassPrecipitationIntensity        DeviceClass = "precipitation_intensity"
	ClassPressure                      DeviceClass = "pressure"
	ClassReactiveEnergy                DeviceClass = "reactive_energy"
	ClassReactivePower                 DeviceClass = "reactive_power"
	ClassSignalStrength                DeviceClass = "signal_strength"
	ClassSoundPressure                 DeviceClass = "sound_pressure"
	ClassSpeed                         DeviceClass = "speed"
	ClassSulphurDioxide                DeviceClass = "sulphur_dioxide"
	ClassTemperature                   DeviceClass = "temperature"
	ClassVolatileOrganicCompounds      DeviceClass = "volatile_organic_compounds"
	ClassVolatileOrganicCompoundsParts DeviceClass = "volatile_organic_compounds_parts"
	ClassVoltage                       DeviceClass = "voltage"
	ClassVolume                        DeviceClass = "volume"
	ClassVolumeStorage                 DeviceClass = "volume_storage"
	ClassVolumeFlowRate                DeviceClass = "volume_flow_rate"
	ClassWater                         DeviceClass = "water"
	ClassWeight                        DeviceClass = "weight"
	ClassWindDirection                 DeviceClass = "wind_direction"
	ClassWindSpeed                     DeviceClass = "wind_speed"
)

var deviceClasses = map[DeviceClass]bool{
	ClassDate:                          true,
	ClassEnum:                          true,
	ClassTimestamp:                     true,
	ClassApparentPower:                 true,
	ClassAqi:                           true,
	ClassArea:                          true,
	ClassAtmosphericPressure:           true,
	ClassBattery:                       true,
	ClassBloodGlucoseConcentration:     true,
	ClassCarbonMonoxide:                true,
	ClassCarbonDioxide:                 true,
	ClassConductivity:                  true,
	ClassCurrent:                       true,
	ClassDataRate:                      true,
	ClassDataSize:                      true,
	ClassDistance:                      true,
	ClassDuration:                      true,
	ClassEnergy:                        true,
	ClassEnergyDistance:                true,
	ClassEnergyStorage:                 true,
	ClassFrequency:                     true,
	ClassGas:                           true,
	ClassHumidity:                      true,
	ClassIlluminance:                   true,
	ClassIrradiance:                    true,
	ClassMoisture:                      true,
	ClassMonetary:                      true,
	ClassNitrogenDioxide:               true,
	ClassNitrogenMonoxide:              true,
	ClassNitrousOxide:                  true,
	ClassOzone:                         true,
	ClassPh:                            true,
	ClassPm1:                           true,
	ClassPm10:                          true,
	ClassPm25:                          true,
	ClassPowerFactor:                   true,
	ClassPower:                         true,
	ClassPrecipitation:                 true,
	ClassPrecipitationIntensity:        true,
	ClassPressure:                      true,
	ClassReactiveEnergy:                true,
	ClassReactivePower:                 true,
	ClassSignalStrength:                true,
	ClassSoundPressure:                 true,
	ClassSpeed:                         true,
	ClassSulphurDioxide:                true,
	ClassTemperature:                   true,
	ClassVolatileOrganicCompounds:      true,
	ClassVolatileOrganicCompoundsParts: true,
	ClassVoltage:                       true,
	ClassVolume:                        true,
	ClassVolumeStorage:                 true,
	ClassVolumeFlowRate:                true,
	ClassWater:                         true,
	ClassWeight:                        true,
	ClassWindDirection:                 true,
	ClassWindSpeed:                     true,
}

// Valid reports whether the device class is a known Home Assistant class.
func (d DeviceClass) Valid() bool {
	return deviceClasses[d]
}
