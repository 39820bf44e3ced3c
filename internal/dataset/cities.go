package dataset

import (
	"strconv"

	"pricetrends/server/internal/models"
)

// trendMonths labels the 1Y series
var trendMonths = []string{"Apr", "May", "Jun", "Jul", "Aug"}

func months(prices ...float64) []models.TrendPoint {
	points := make([]models.TrendPoint, len(prices))
	for i, p := range prices {
		points[i] = models.TrendPoint{Label: trendMonths[i%len(trendMonths)], Price: p}
	}
	return points
}

func years(first int, prices ...float64) []models.TrendPoint {
	points := make([]models.TrendPoint, len(prices))
	for i, p := range prices {
		points[i] = models.TrendPoint{Label: strconv.Itoa(first + i), Price: p}
	}
	return points
}

// cities is the bundled mock market data, in display order. Prices are
// rupees per square foot, growth is a signed percentage.
var cities = []models.City{
	{
		Name:   "Mumbai",
		Price:  15000,
		Growth: 4.9,
		Image:  "/mumbai.jpg",
		Appreciating: []models.Locality{
			{Name: "Vikhroli", Growth: 7.2, AvgPrice: 8500, State: "Maharashtra"},
			{Name: "Andheri East", Growth: 6.9, AvgPrice: 9200, State: "Maharashtra"},
			{Name: "Mulund West", Growth: 5.5, AvgPrice: 8800, State: "Maharashtra"},
		},
		Depreciating: []models.Locality{
			{Name: "Chembur", Growth: -4.3, AvgPrice: 6200, State: "Maharashtra"},
			{Name: "Bandra West", Growth: -3.8, AvgPrice: 15000, State: "Maharashtra"},
		},
		PriceTrend: map[models.TrendWindow][]models.TrendPoint{
			models.Window1Y: months(14500, 14800, 15100, 15400, 15600),
			models.Window3Y: years(2022, 12800, 13900, 15600),
			models.Window5Y: years(2020, 11500, 12100, 12800, 13900, 15600),
		},
	},
	{
		Name:   "Delhi",
		Price:  10500,
		Growth: 2.6,
		Image:  "/delhi.jpg",
		Appreciating: []models.Locality{
			{Name: "Dwarka", Growth: 6.5, AvgPrice: 7500, State: "Delhi"},
			{Name: "Saket", Growth: 5.8, AvgPrice: 9800, State: "Delhi"},
		},
		Depreciating: []models.Locality{
			{Name: "Vasant Kunj", Growth: -1.5, AvgPrice: 12200, State: "Delhi"},
			{Name: "GK I", Growth: -1.2, AvgPrice: 14500, State: "Delhi"},
		},
		PriceTrend: map[models.TrendWindow][]models.TrendPoint{
			models.Window1Y: months(10000, 10200, 10300, 10500, 10600),
			models.Window3Y: years(2022, 9200, 9800, 10600),
			models.Window5Y: years(2020, 8500, 8800, 9200, 9800, 10600),
		},
	},
	{
		Name:   "Bangalore",
		Price:  8200,
		Growth: 6.1,
		Image:  "/bangalore.jpg",
		Appreciating: []models.Locality{
			{Name: "Whitefield", Growth: 8.2, AvgPrice: 7800, State: "Karnataka"},
			{Name: "HSR Layout", Growth: 7.1, AvgPrice: 9500, State: "Karnataka"},
		},
		Depreciating: []models.Locality{
			{Name: "Koramangala", Growth: -0.5, AvgPrice: 11000, State: "Karnataka"},
		},
		PriceTrend: map[models.TrendWindow][]models.TrendPoint{
			models.Window1Y: months(7800, 7900, 8000, 8100, 8200),
			models.Window3Y: years(2022, 6800, 7500, 8200),
			models.Window5Y: years(2020, 6000, 6400, 6800, 7500, 8200),
		},
	},
	{
		Name:   "Hyderabad",
		Price:  7700,
		Growth: 3.7,
		Image:  "/Hyderabad.jpeg",
		Appreciating: []models.Locality{
			{Name: "Gachibowli", Growth: 9.5, AvgPrice: 8100, State: "Telangana"},
			{Name: "Kukatpally", Growth: 8.0, AvgPrice: 7200, State: "Telangana"},
		},
		Depreciating: []models.Locality{
			{Name: "Banjara Hills", Growth: -1.1, AvgPrice: 9900, State: "Telangana"},
		},
		PriceTrend: map[models.TrendWindow][]models.TrendPoint{
			models.Window1Y: months(7200, 7300, 7400, 7500, 7700),
			models.Window3Y: years(2022, 6100, 6800, 7700),
			models.Window5Y: years(2020, 5500, 5800, 6100, 6800, 7700),
		},
	},
	{
		Name:   "Chennai",
		Price:  7900,
		Growth: 4.2,
		Image:  "/chennai.jpeg",
		Appreciating: []models.Locality{
			{Name: "Velachery", Growth: 6.7, AvgPrice: 7300, State: "Tamil Nadu"},
			{Name: "Adyar", Growth: 5.5, AvgPrice: 9400, State: "Tamil Nadu"},
		},
		Depreciating: []models.Locality{
			{Name: "T Nagar", Growth: -1.8, AvgPrice: 10000, State: "Tamil Nadu"},
		},
		PriceTrend: map[models.TrendWindow][]models.TrendPoint{
			models.Window1Y: months(7500, 7600, 7700, 7800, 7900),
			models.Window3Y: years(2022, 6900, 7300, 7900),
			models.Window5Y: years(2020, 6200, 6500, 6900, 7300, 7900),
		},
	},
	{
		Name:   "Pune",
		Price:  6800,
		Growth: 3.5,
		Image:  "/pune.jpeg",
		Appreciating: []models.Locality{
			{Name: "Hinjewadi", Growth: 7.0, AvgPrice: 6200, State: "Maharashtra"},
			{Name: "Kharadi", Growth: 6.4, AvgPrice: 6800, State: "Maharashtra"},
		},
		Depreciating: []models.Locality{
			{Name: "Camp", Growth: -0.9, AvgPrice: 7400, State: "Maharashtra"},
		},
		PriceTrend: map[models.TrendWindow][]models.TrendPoint{
			models.Window1Y: months(6400, 6500, 6600, 6700, 6800),
			models.Window3Y: years(2022, 5900, 6300, 6800),
			models.Window5Y: years(2020, 5200, 5600, 5900, 6300, 6800),
		},
	},
	{
		Name:   "Ahmedabad",
		Price:  5900,
		Growth: 4.0,
		Image:  "/Ahmedabad.jpeg",
		Appreciating: []models.Locality{
			{Name: "Bopal", Growth: 6.5, AvgPrice: 5400, State: "Gujarat"},
			{Name: "SG Highway", Growth: 6.1, AvgPrice: 6100, State: "Gujarat"},
		},
		Depreciating: []models.Locality{
			{Name: "Maninagar", Growth: -1.3, AvgPrice: 5100, State: "Gujarat"},
		},
		PriceTrend: map[models.TrendWindow][]models.TrendPoint{
			models.Window1Y: months(5600, 5700, 5800, 5900, 5900),
			models.Window3Y: years(2022, 5000, 5400, 5900),
			models.Window5Y: years(2020, 4500, 4700, 5000, 5400, 5900),
		},
	},
	{
		Name:   "Kolkata",
		Price:  6200,
		Growth: 3.0,
		Image:  "/kolkata.jpeg",
		Appreciating: []models.Locality{
			{Name: "Salt Lake", Growth: 5.8, AvgPrice: 6400, State: "West Bengal"},
			{Name: "Rajarhat", Growth: 5.0, AvgPrice: 5800, State: "West Bengal"},
		},
		Depreciating: []models.Locality{
			{Name: "Howrah", Growth: -0.7, AvgPrice: 5200, State: "West Bengal"},
		},
		PriceTrend: map[models.TrendWindow][]models.TrendPoint{
			models.Window1Y: months(5900, 6000, 6100, 6200, 6200),
			models.Window3Y: years(2022, 5500, 5800, 6200),
			models.Window5Y: years(2020, 5000, 5200, 5500, 5800, 6200),
		},
	},
	{
		Name:   "Surat",
		Price:  5500,
		Growth: 2.8,
		Image:  "/surat.jpeg",
		Appreciating: []models.Locality{
			{Name: "Adajan", Growth: 4.9, AvgPrice: 5200, State: "Gujarat"},
			{Name: "Vesu", Growth: 4.4, AvgPrice: 5600, State: "Gujarat"},
		},
		Depreciating: []models.Locality{
			{Name: "Katargam", Growth: -1.1, AvgPrice: 4800, State: "Gujarat"},
		},
		PriceTrend: map[models.TrendWindow][]models.TrendPoint{
			models.Window1Y: months(5200, 5300, 5400, 5500, 5500),
			models.Window3Y: years(2022, 4800, 5000, 5500),
			models.Window5Y: years(2020, 4300, 4500, 4800, 5000, 5500),
		},
	},
	{
		Name:   "Jaipur",
		Price:  5800,
		Growth: 3.3,
		Image:  "/jaipur.jpeg",
		Appreciating: []models.Locality{
			{Name: "Vaishali Nagar", Growth: 5.5, AvgPrice: 5900, State: "Rajasthan"},
			{Name: "Malviya Nagar", Growth: 4.9, AvgPrice: 6100, State: "Rajasthan"},
		},
		Depreciating: []models.Locality{
			{Name: "Jhotwara", Growth: -1.0, AvgPrice: 4900, State: "Rajasthan"},
		},
		PriceTrend: map[models.TrendWindow][]models.TrendPoint{
			models.Window1Y: months(5500, 5600, 5700, 5800, 5800),
			models.Window3Y: years(2022, 5000, 5300, 5800),
			models.Window5Y: years(2020, 4600, 4800, 5000, 5300, 5800),
		},
	},
	{
		Name:   "Lucknow",
		Price:  4900,
		Growth: 2.7,
		Image:  "/lucknow.jpg",
		Appreciating: []models.Locality{
			{Name: "Gomti Nagar", Growth: 5.2, AvgPrice: 5200, State: "Uttar Pradesh"},
			{Name: "Aliganj", Growth: 4.5, AvgPrice: 4800, State: "Uttar Pradesh"},
		},
		Depreciating: []models.Locality{
			{Name: "Charbagh", Growth: -0.8, AvgPrice: 4300, State: "Uttar Pradesh"},
		},
		PriceTrend: map[models.TrendWindow][]models.TrendPoint{
			models.Window1Y: months(4700, 4800, 4900, 4900, 4900),
			models.Window3Y: years(2022, 4500, 4700, 4900),
			models.Window5Y: years(2020, 4000, 4200, 4500, 4700, 4900),
		},
	},
	{
		Name:   "Kanpur",
		Price:  4700,
		Growth: 2.4,
		Image:  "/kanpur.jpeg",
		Appreciating: []models.Locality{
			{Name: "Swaroop Nagar", Growth: 4.7, AvgPrice: 4900, State: "Uttar Pradesh"},
			{Name: "Kakadeo", Growth: 4.1, AvgPrice: 4800, State: "Uttar Pradesh"},
		},
		Depreciating: []models.Locality{
			{Name: "Govind Nagar", Growth: -0.6, AvgPrice: 4200, State: "Uttar Pradesh"},
		},
		PriceTrend: map[models.TrendWindow][]models.TrendPoint{
			models.Window1Y: months(4500, 4600, 4700, 4700, 4700),
			models.Window3Y: years(2022, 4300, 4500, 4700),
			models.Window5Y: years(2020, 3900, 4100, 4300, 4500, 4700),
		},
	},
	{
		Name:   "Nagpur",
		Price:  5100,
		Growth: 3.1,
		Image:  "/nagpur.jpeg",
		Appreciating: []models.Locality{
			{Name: "Manish Nagar", Growth: 5.0, AvgPrice: 5400, State: "Maharashtra"},
			{Name: "Dharampeth", Growth: 4.6, AvgPrice: 5300, State: "Maharashtra"},
		},
		Depreciating: []models.Locality{
			{Name: "Sadar", Growth: -0.9, AvgPrice: 4700, State: "Maharashtra"},
		},
		PriceTrend: map[models.TrendWindow][]models.TrendPoint{
			models.Window1Y: months(4900, 5000, 5100, 5100, 5100),
			models.Window3Y: years(2022, 4700, 4900, 5100),
			models.Window5Y: years(2020, 4300, 4500, 4700, 4900, 5100),
		},
	},
	{
		Name:   "Bhopal",
		Price:  4800,
		Growth: 2.9,
		Image:  "/bhopal.jpeg",
		Appreciating: []models.Locality{
			{Name: "Arera Colony", Growth: 5.1, AvgPrice: 5000, State: "Madhya Pradesh"},
			{Name: "Kolar Road", Growth: 4.3, AvgPrice: 4700, State: "Madhya Pradesh"},
		},
		Depreciating: []models.Locality{
			{Name: "Old City", Growth: -1.0, AvgPrice: 4100, State: "Madhya Pradesh"},
		},
		PriceTrend: map[models.TrendWindow][]models.TrendPoint{
			models.Window1Y: months(4600, 4700, 4800, 4800, 4800),
			models.Window3Y: years(2022, 4500, 4600, 4800),
			models.Window5Y: years(2020, 4100, 4300, 4500, 4600, 4800),
		},
	},
	{
		Name:   "Patna",
		Price:  4600,
		Growth: 2.5,
		Image:  "/patna.jpeg",
		Appreciating: []models.Locality{
			{Name: "Kankarbagh", Growth: 4.8, AvgPrice: 4800, State: "Bihar"},
			{Name: "Boring Road", Growth: 4.2, AvgPrice: 4700, State: "Bihar"},
		},
		Depreciating: []models.Locality{
			{Name: "Patliputra", Growth: -0.7, AvgPrice: 4200, State: "Bihar"},
		},
		PriceTrend: map[models.TrendWindow][]models.TrendPoint{
			models.Window1Y: months(4400, 4500, 4600, 4600, 4600),
			models.Window3Y: years(2022, 4300, 4400, 4600),
			models.Window5Y: years(2020, 3900, 4100, 4300, 4400, 4600),
		},
	},
	{
		Name:   "Vadodara",
		Price:  5300,
		Growth: 3.2,
		Image:  "/vadodara.jpeg",
		Appreciating: []models.Locality{
			{Name: "Alkapuri", Growth: 5.4, AvgPrice: 5600, State: "Gujarat"},
			{Name: "Gotri", Growth: 4.8, AvgPrice: 5200, State: "Gujarat"},
		},
		Depreciating: []models.Locality{
			{Name: "Fatehgunj", Growth: -0.9, AvgPrice: 4900, State: "Gujarat"},
		},
		PriceTrend: map[models.TrendWindow][]models.TrendPoint{
			models.Window1Y: months(5100, 5200, 5300, 5300, 5300),
			models.Window3Y: years(2022, 4900, 5100, 5300),
			models.Window5Y: years(2020, 4500, 4700, 4900, 5100, 5300),
		},
	},
	{
		Name:   "Ludhiana",
		Price:  5000,
		Growth: 2.9,
		Image:  "/ludhiana.jpeg",
		Appreciating: []models.Locality{
			{Name: "Pakhowal Road", Growth: 5.0, AvgPrice: 5200, State: "Punjab"},
			{Name: "Sarabha Nagar", Growth: 4.6, AvgPrice: 5100, State: "Punjab"},
		},
		Depreciating: []models.Locality{
			{Name: "Gill Road", Growth: -0.8, AvgPrice: 4600, State: "Punjab"},
		},
		PriceTrend: map[models.TrendWindow][]models.TrendPoint{
			models.Window1Y: months(4800, 4900, 5000, 5000, 5000),
			models.Window3Y: years(2022, 4700, 4800, 5000),
			models.Window5Y: years(2020, 4300, 4500, 4700, 4800, 5000),
		},
	},
	{
		Name:   "Agra",
		Price:  4400,
		Growth: 2.2,
		Image:  "/agra.jpeg",
		Appreciating: []models.Locality{
			{Name: "Civil Lines", Growth: 4.5, AvgPrice: 4700, State: "Uttar Pradesh"},
			{Name: "Kamla Nagar", Growth: 4.0, AvgPrice: 4500, State: "Uttar Pradesh"},
		},
		Depreciating: []models.Locality{
			{Name: "Shahganj", Growth: -0.6, AvgPrice: 4000, State: "Uttar Pradesh"},
		},
		PriceTrend: map[models.TrendWindow][]models.TrendPoint{
			models.Window1Y: months(4200, 4300, 4400, 4400, 4400),
			models.Window3Y: years(2022, 4100, 4200, 4400),
			models.Window5Y: years(2020, 3800, 3900, 4100, 4200, 4400),
		},
	},
	{
		Name:   "Indore",
		Price:  5400,
		Growth: 3.4,
		Image:  "/indore.jpeg",
		Appreciating: []models.Locality{
			{Name: "Vijay Nagar", Growth: 5.6, AvgPrice: 5700, State: "Madhya Pradesh"},
			{Name: "Palasia", Growth: 4.9, AvgPrice: 5500, State: "Madhya Pradesh"},
		},
		Depreciating: []models.Locality{
			{Name: "Rajwada", Growth: -1.0, AvgPrice: 4900, State: "Madhya Pradesh"},
		},
		PriceTrend: map[models.TrendWindow][]models.TrendPoint{
			models.Window1Y: months(5200, 5300, 5400, 5400, 5400),
			models.Window3Y: years(2022, 5000, 5200, 5400),
			models.Window5Y: years(2020, 4600, 4800, 5000, 5200, 5400),
		},
	},
	{
		Name:   "Coimbatore",
		Price:  5200,
		Growth: 3.0,
		Image:  "/coimbatore.jpeg",
		Appreciating: []models.Locality{
			{Name: "RS Puram", Growth: 5.3, AvgPrice: 5500, State: "Tamil Nadu"},
			{Name: "Saibaba Colony", Growth: 4.7, AvgPrice: 5400, State: "Tamil Nadu"},
		},
		Depreciating: []models.Locality{
			{Name: "Gandhipuram", Growth: -0.8, AvgPrice: 4800, State: "Tamil Nadu"},
		},
		PriceTrend: map[models.TrendWindow][]models.TrendPoint{
			models.Window1Y: months(5000, 5100, 5200, 5200, 5200),
			models.Window3Y: years(2022, 4800, 5000, 5200),
			models.Window5Y: years(2020, 4400, 4600, 4800, 5000, 5200),
		},
	},
}
