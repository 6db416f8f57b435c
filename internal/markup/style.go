package markup

// Stylesheet is prepended once to every rendered document. The forest green
// theme covers the classes emitted for tables and the inline elements.
const Stylesheet = "<style>" +
	"body { " +
	"background-color: #fbfbfb; " +
	`font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, "Helvetica Neue", Arial, sans-serif; ` +
	"line-height: 1.7; " +
	"color: #333333; " +
	"} " +
	"a { " +
	"color: #28a745; " +
	"text-decoration: none; " +
	"border-bottom: 1px dotted #28a745; " +
	"transition: all 0.2s ease-in-out; " +
	"} " +
	"a:hover { " +
	"color: #228B22; " +
	"border-bottom: 1px solid #228B22; " +
	"} " +
	"h1, h2, h3, h4, h5, h6 { " +
	"color: #228B22; " +
	"margin-top: 2em; " +
	"margin-bottom: 0.8em; " +
	"font-weight: 600; " +
	"} " +
	"h1 { border-bottom: 2px solid #e0e0e0; padding-bottom: 0.3em; }" +
	"h2 { border-bottom: 1px solid #e0e0e0; padding-bottom: 0.3em; }" +
	".table-wrapper { " +
	"overflow-x: auto; " +
	"margin: 2em 0; " +
	"-webkit-overflow-scrolling: touch; " +
	"} " +
	".md-table { " +
	"box-sizing: border-box; " +
	"width: 100%; " +
	"border-collapse: collapse; " +
	"font-family: inherit; " +
	"box-shadow: 0 4px 15px rgba(0, 0, 0, 0.08); " +
	"border-radius: 10px; " +
	"overflow: hidden; " +
	"border: 1px solid #e0e0e0; " +
	"} " +
	".md-table thead tr { " +
	"background-color: #228B22; " +
	"color: #ffffff; " +
	"text-align: left; " +
	"font-weight: bold; " +
	"} " +
	".md-table th, .md-table td { " +
	"padding: 14px 18px; " +
	"border: none; " +
	"border-bottom: 1px solid #e0e0e0; " +
	"} " +
	".md-table tbody tr { " +
	"background-color: #ffffff; " +
	"transition: background-color 0.2s ease; " +
	"} " +
	".md-table tbody tr:last-of-type { border-bottom: none; }" +
	".md-table tbody tr:hover { " +
	"background-color: #f0fff0; " +
	"} " +
	"blockquote { " +
	"border-left: 5px solid #228B22; " +
	"padding: 15px 25px; " +
	"margin: 2em 0; " +
	"background-color: #f0fff0; " +
	"color: #555555; " +
	"font-style: italic; " +
	"border-radius: 0 8px 8px 0; " +
	"} " +
	"blockquote p { margin: 0; }" +
	"hr { " +
	"border: 0; " +
	"height: 2px; " +
	"background-image: linear-gradient(to right, transparent, #228B22, transparent); " +
	"} " +
	"p code, li code { " +
	"background-color: #e8e8e8; " +
	"border-radius: 4px; " +
	"padding: 3px 6px; " +
	`font-family: "Fira Code", "Courier New", monospace; ` +
	"font-size: 0.9em; " +
	"color: #c7254e; " +
	"} " +
	"</style>"
