package catalog

// DefaultCatalog returns the embedded bright-star catalog, a Yale Bright
// Star Catalog subset with IAU names and B-V color indices. J2000 epoch,
// right ascension in decimal hours. Covers both hemispheres so the map
// works at any configured latitude.
func DefaultCatalog() Catalog {
	return Catalog{Stars: brightStars}
}

var brightStars = []Star{
	{ID: 1, Name: "Sirius", RAHours: 6.7525, DecDeg: -16.716, Mag: -1.46, ColorIndex: 0.0, Constellation: "Canis Major"},
	{ID: 2, Name: "Canopus", RAHours: 6.3992, DecDeg: -52.696, Mag: -0.74, ColorIndex: 0.15, Constellation: "Carina"},
	{ID: 3, Name: "Arcturus", RAHours: 14.2610, DecDeg: 19.182, Mag: -0.05, ColorIndex: 1.23, Constellation: "Bootes"},
	{ID: 4, Name: "Vega", RAHours: 18.6157, DecDeg: 38.784, Mag: 0.03, ColorIndex: 0.0, Constellation: "Lyra"},
	{ID: 5, Name: "Capella", RAHours: 5.2781, DecDeg: 45.998, Mag: 0.08, ColorIndex: 0.8, Constellation: "Auriga"},
	{ID: 6, Name: "Rigel", RAHours: 5.2423, DecDeg: -8.202, Mag: 0.13, ColorIndex: -0.03, Constellation: "Orion"},
	{ID: 7, Name: "Procyon", RAHours: 7.6551, DecDeg: 5.225, Mag: 0.34, ColorIndex: 0.42, Constellation: "Canis Minor"},
	{ID: 8, Name: "Achernar", RAHours: 1.6286, DecDeg: -57.237, Mag: 0.46, ColorIndex: -0.16, Constellation: "Eridanus"},
	{ID: 9, Name: "Betelgeuse", RAHours: 5.9195, DecDeg: 7.407, Mag: 0.5, ColorIndex: 1.85, Constellation: "Orion"},
	{ID: 10, Name: "Hadar", RAHours: 14.0637, DecDeg: -60.373, Mag: 0.61, ColorIndex: -0.23, Constellation: "Centaurus"},
	{ID: 11, Name: "Altair", RAHours: 19.8464, DecDeg: 8.868, Mag: 0.76, ColorIndex: 0.22, Constellation: "Aquila"},
	{ID: 12, Name: "Acrux", RAHours: 12.4433, DecDeg: -63.099, Mag: 0.76, ColorIndex: -0.26, Constellation: "Crux"},
	{ID: 13, Name: "Aldebaran", RAHours: 4.5987, DecDeg: 16.509, Mag: 0.85, ColorIndex: 1.54, Constellation: "Taurus"},
	{ID: 14, Name: "Antares", RAHours: 16.4901, DecDeg: -26.432, Mag: 0.96, ColorIndex: 1.83, Constellation: "Scorpius"},
	{ID: 15, Name: "Spica", RAHours: 13.4199, DecDeg: -11.161, Mag: 0.97, ColorIndex: -0.23, Constellation: "Virgo"},
	{ID: 16, Name: "Pollux", RAHours: 7.7553, DecDeg: 28.026, Mag: 1.14, ColorIndex: 1.0, Constellation: "Gemini"},
	{ID: 17, Name: "Fomalhaut", RAHours: 22.9609, DecDeg: -29.622, Mag: 1.16, ColorIndex: 0.09, Constellation: "Piscis Austrinus"},
	{ID: 18, Name: "Deneb", RAHours: 20.6905, DecDeg: 45.28, Mag: 1.25, ColorIndex: 0.09, Constellation: "Cygnus"},
	{ID: 19, Name: "Mimosa", RAHours: 12.7953, DecDeg: -59.689, Mag: 1.25, ColorIndex: -0.23, Constellation: "Crux"},
	{ID: 20, Name: "Regulus", RAHours: 10.1395, DecDeg: 11.967, Mag: 1.35, ColorIndex: -0.11, Constellation: "Leo"},
	{ID: 21, Name: "Adhara", RAHours: 6.9771, DecDeg: -28.972, Mag: 1.5, ColorIndex: -0.21, Constellation: "Canis Major"},
	{ID: 22, Name: "Castor", RAHours: 7.5767, DecDeg: 31.889, Mag: 1.58, ColorIndex: 0.03, Constellation: "Gemini"},
	{ID: 23, Name: "Gacrux", RAHours: 12.5194, DecDeg: -57.113, Mag: 1.63, ColorIndex: 1.59, Constellation: "Crux"},
	{ID: 24, Name: "Shaula", RAHours: 17.5601, DecDeg: -37.104, Mag: 1.63, ColorIndex: -0.22, Constellation: "Scorpius"},
	{ID: 25, Name: "Bellatrix", RAHours: 5.4189, DecDeg: 6.35, Mag: 1.64, ColorIndex: -0.22, Constellation: "Orion"},
	{ID: 26, Name: "Elnath", RAHours: 5.4382, DecDeg: 28.608, Mag: 1.65, ColorIndex: -0.13, Constellation: "Taurus"},
	{ID: 27, Name: "Alnilam", RAHours: 5.6035, DecDeg: -1.202, Mag: 1.69, ColorIndex: -0.18, Constellation: "Orion"},
	{ID: 28, Name: "Alnitak", RAHours: 5.6793, DecDeg: -1.943, Mag: 1.77, ColorIndex: -0.2, Constellation: "Orion"},
	{ID: 29, Name: "Alioth", RAHours: 12.9005, DecDeg: 55.96, Mag: 1.77, ColorIndex: -0.02, Constellation: "Ursa Major"},
	{ID: 30, Name: "Dubhe", RAHours: 11.0621, DecDeg: 61.751, Mag: 1.79, ColorIndex: 1.06, Constellation: "Ursa Major"},
	{ID: 31, Name: "Mirfak", RAHours: 3.4054, DecDeg: 49.861, Mag: 1.79, ColorIndex: 0.48, Constellation: "Perseus"},
	{ID: 32, Name: "Wezen", RAHours: 7.1399, DecDeg: -26.393, Mag: 1.84, ColorIndex: 0.67, Constellation: "Canis Major"},
	{ID: 33, Name: "Alkaid", RAHours: 13.7923, DecDeg: 49.313, Mag: 1.86, ColorIndex: -0.1, Constellation: "Ursa Major"},
	{ID: 34, Name: "Menkalinan", RAHours: 5.9921, DecDeg: 44.948, Mag: 1.9, ColorIndex: 0.08, Constellation: "Auriga"},
	{ID: 35, Name: "Alhena", RAHours: 6.6285, DecDeg: 16.399, Mag: 1.93, ColorIndex: 0.0, Constellation: "Gemini"},
	{ID: 36, Name: "Mirzam", RAHours: 6.3783, DecDeg: -17.956, Mag: 1.98, ColorIndex: -0.24, Constellation: "Canis Major"},
	{ID: 37, Name: "Alphard", RAHours: 9.4598, DecDeg: -8.659, Mag: 2.0, ColorIndex: 1.44, Constellation: "Hydra"},
	{ID: 38, Name: "Hamal", RAHours: 2.1195, DecDeg: 23.463, Mag: 2.0, ColorIndex: 1.15, Constellation: "Aries"},
	{ID: 39, Name: "Polaris", RAHours: 2.5303, DecDeg: 89.264, Mag: 2.02, ColorIndex: 0.6, Constellation: "Ursa Minor"},
	{ID: 40, Name: "Diphda", RAHours: 0.7265, DecDeg: -17.987, Mag: 2.02, ColorIndex: 1.02, Constellation: "Cetus"},
	{ID: 41, Name: "Nunki", RAHours: 18.9211, DecDeg: -26.297, Mag: 2.02, ColorIndex: -0.13, Constellation: "Sagittarius"},
	{ID: 42, Name: "Mizar", RAHours: 13.3987, DecDeg: 54.925, Mag: 2.04, ColorIndex: 0.06, Constellation: "Ursa Major"},
	{ID: 43, Name: "Alpheratz", RAHours: 0.1398, DecDeg: 29.091, Mag: 2.06, ColorIndex: -0.04, Constellation: "Andromeda"},
	{ID: 44, Name: "Mirach", RAHours: 1.1622, DecDeg: 35.621, Mag: 2.05, ColorIndex: 1.58, Constellation: "Andromeda"},
	{ID: 45, Name: "Kochab", RAHours: 14.8451, DecDeg: 74.156, Mag: 2.08, ColorIndex: 1.46, Constellation: "Ursa Minor"},
	{ID: 46, Name: "Rasalhague", RAHours: 17.5823, DecDeg: 12.56, Mag: 2.08, ColorIndex: 0.16, Constellation: "Ophiuchus"},
	{ID: 47, Name: "Saiph", RAHours: 5.7959, DecDeg: -9.67, Mag: 2.09, ColorIndex: -0.17, Constellation: "Orion"},
	{ID: 48, Name: "Algol", RAHours: 3.1361, DecDeg: 40.957, Mag: 2.12, ColorIndex: -0.05, Constellation: "Perseus"},
	{ID: 49, Name: "Denebola", RAHours: 11.8177, DecDeg: 14.572, Mag: 2.13, ColorIndex: 0.09, Constellation: "Leo"},
	{ID: 50, Name: "Schedar", RAHours: 0.6751, DecDeg: 56.537, Mag: 2.23, ColorIndex: 1.17, Constellation: "Cassiopeia"},
	{ID: 51, Name: "Sadr", RAHours: 20.3705, DecDeg: 40.257, Mag: 2.23, ColorIndex: 0.68, Constellation: "Cygnus"},
	{ID: 52, Name: "Eltanin", RAHours: 17.9435, DecDeg: 51.489, Mag: 2.23, ColorIndex: 1.52, Constellation: "Draco"},
	{ID: 53, Name: "Mintaka", RAHours: 5.5335, DecDeg: -0.299, Mag: 2.23, ColorIndex: -0.17, Constellation: "Orion"},
	{ID: 54, Name: "Alphecca", RAHours: 15.5781, DecDeg: 26.715, Mag: 2.23, ColorIndex: -0.02, Constellation: "Corona Borealis"},
	{ID: 55, Name: "Caph", RAHours: 0.1530, DecDeg: 59.15, Mag: 2.27, ColorIndex: 0.34, Constellation: "Cassiopeia"},
	{ID: 56, Name: "Merak", RAHours: 11.0307, DecDeg: 56.382, Mag: 2.37, ColorIndex: 0.03, Constellation: "Ursa Major"},
	{ID: 57, Name: "Izar", RAHours: 14.7498, DecDeg: 27.074, Mag: 2.37, ColorIndex: 0.97, Constellation: "Bootes"},
	{ID: 58, Name: "Enif", RAHours: 21.7364, DecDeg: 9.875, Mag: 2.39, ColorIndex: 1.52, Constellation: "Pegasus"},
	{ID: 59, Name: "Scheat", RAHours: 23.0629, DecDeg: 28.083, Mag: 2.42, ColorIndex: 1.67, Constellation: "Pegasus"},
	{ID: 60, Name: "Phecda", RAHours: 11.8972, DecDeg: 53.695, Mag: 2.44, ColorIndex: 0.04, Constellation: "Ursa Major"},
	{ID: 61, Name: "Alderamin", RAHours: 21.3097, DecDeg: 62.586, Mag: 2.51, ColorIndex: 0.22, Constellation: "Cepheus"},
	{ID: 62, Name: "Markab", RAHours: 23.0793, DecDeg: 15.205, Mag: 2.49, ColorIndex: -0.04, Constellation: "Pegasus"},
	{ID: 63, Name: "Zosma", RAHours: 11.2351, DecDeg: 20.524, Mag: 2.56, ColorIndex: 0.12, Constellation: "Leo"},
	{ID: 64, Name: "Arneb", RAHours: 5.5455, DecDeg: -17.822, Mag: 2.58, ColorIndex: 0.21, Constellation: "Lepus"},
	{ID: 65, Name: "Unukalhai", RAHours: 15.7378, DecDeg: 6.426, Mag: 2.65, ColorIndex: 1.17, Constellation: "Serpens"},
	{ID: 66, Name: "Sheratan", RAHours: 1.9107, DecDeg: 20.808, Mag: 2.64, ColorIndex: 0.13, Constellation: "Aries"},
	{ID: 67, Name: "Tarazed", RAHours: 19.7710, DecDeg: 10.613, Mag: 2.72, ColorIndex: 1.52, Constellation: "Aquila"},
	{ID: 68, Name: "Porrima", RAHours: 12.6943, DecDeg: -1.449, Mag: 2.74, ColorIndex: 0.36, Constellation: "Virgo"},
	{ID: 69, Name: "Rastaban", RAHours: 17.5072, DecDeg: 52.301, Mag: 2.79, ColorIndex: 0.98, Constellation: "Draco"},
	{ID: 70, Name: "Cor Caroli", RAHours: 12.9338, DecDeg: 38.318, Mag: 2.81, ColorIndex: -0.12, Constellation: "Canes Venatici"},
	{ID: 71, Name: "Vindemiatrix", RAHours: 13.0363, DecDeg: 10.959, Mag: 2.83, ColorIndex: 0.93, Constellation: "Virgo"},
	{ID: 72, Name: "Alcyone", RAHours: 3.7914, DecDeg: 24.105, Mag: 2.87, ColorIndex: -0.09, Constellation: "Taurus"},
	{ID: 73, Name: "Megrez", RAHours: 12.2571, DecDeg: 57.033, Mag: 3.31, ColorIndex: 0.08, Constellation: "Ursa Major"},
	{ID: 74, Name: "Albireo", RAHours: 19.5120, DecDeg: 27.96, Mag: 3.18, ColorIndex: 1.13, Constellation: "Cygnus"},
	{ID: 75, Name: "Thuban", RAHours: 14.0731, DecDeg: 64.376, Mag: 3.65, ColorIndex: -0.05, Constellation: "Draco"},
	{ID: 76, Name: "Alcor", RAHours: 13.4204, DecDeg: 54.988, Mag: 3.99, ColorIndex: 0.16, Constellation: "Ursa Major"},
}
