package api

// Static reference data for the panchanga form dropdowns, served by the
// metadata endpoint. Display values only; translation of provider vocabulary
// lives in the lookup tables.

var samvatsarams = []string{
	"Prabhava", "Vibhava", "Shukla", "Pramodoota", "Prajotpathi",
	"Aangirasa", "Shrimukha", "Bhava", "Yuva", "Dhaatu",
	"Eeshwara", "Bahudhanya", "Pramaadhi", "Vikrama", "Vrusha",
	"Chitrabhanu", "Subhanu", "Tharana", "Paarthiva", "Vyaya",
	"Sarvajith", "Sarvadhari", "Virodhi", "Vikruthi", "Khara",
	"Nandana", "Vijaya", "Jaya", "Manmatha", "Durmukhi",
	"Hevilambi", "Vilambi", "Vikaari", "Shaarvari", "Plava",
	"Shubhakruthu", "Shobhakruthu", "Krodhi", "Vishvavasu", "Parabhava",
	"Plavanga", "Keelaka", "Saumya", "Saadharana", "Virodhikruthu",
	"Paridhavi", "Pramaadheecha", "Aananda", "Raakshasa", "Anala",
	"Pingala", "Kaala Yuktha", "Siddharthi", "Roudri", "Durmathi",
	"Dundubhi", "Rudhirodgaari", "Rakthaakshi", "Krodhana", "Akshaya",
}

var ayanams = []string{"Uttarayanam", "Dakshinayanam"}

var ruthus = []string{
	"Vasantha Ruthu", "Greeshma Ruthu", "Varsha Ruthu",
	"Sharath Ruthu", "Hemantha Ruthu", "Shishira Ruthu",
}

var masams = []string{
	"Chaitra", "Vaishakha", "Jyeshtha", "Ashadha",
	"Shravana", "Bhadrapada", "Ashwija", "Karthika",
	"Margasira", "Pushya", "Magha", "Phalguna",
}

var pakshams = []string{"Shukla Paksham", "Krishna Paksham"}

var tithis = []string{
	"Prathama", "Dwitiya", "Tritiya", "Chaturthi", "Panchami",
	"Shashti", "Saptami", "Ashtami", "Navami", "Dashami",
	"Ekadashi", "Dwadashi", "Trayodashi", "Chaturdashi",
	"Pournami / Amavasya",
}

var vaasarams = []string{
	"Bhanu Vaasaram (Sunday)", "Soma Vaasaram (Monday)",
	"Mangala Vaasaram (Tuesday)", "Budha Vaasaram (Wednesday)",
	"Guru Vaasaram (Thursday)", "Shukra Vaasaram (Friday)",
	"Shani Vaasaram (Saturday)",
}

var nakshatrams = []string{
	"Ashwini", "Bharani", "Krithika", "Rohini", "Mrigashira",
	"Ardra", "Punarvasu", "Pushyami", "Ashlesha", "Magha",
	"Purva Phalguni", "Uttara Phalguni", "Hasta", "Chitra",
	"Swati", "Vishaka", "Anuradha", "Jyeshtha", "Moola",
	"Purva Ashadha", "Uttara Ashadha", "Shravanam", "Dhanishtha",
	"Shatabhisha", "Purva Bhadrapada", "Uttara Bhadrapada", "Revati",
}

var rasis = []string{
	"Mesha (Aries)", "Vrishabha (Taurus)", "Mithuna (Gemini)",
	"Karka (Cancer)", "Simha (Leo)", "Kanya (Virgo)",
	"Tula (Libra)", "Vrischika (Scorpio)", "Dhanus (Sagittarius)",
	"Makara (Capricorn)", "Kumbha (Aquarius)", "Meena (Pisces)",
}
