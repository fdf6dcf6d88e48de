package css

import "go.uber.org/zap"

// UserAgentStylesheet is the default element styling applied before any
// author sheet. It sticks to the value forms this parser accepts: explicit
// units on every length and single keywords per property.
const UserAgentStylesheet = `
/* Document defaults */
html {
	display: block;
}

body {
	display: block;
	margin: 8px;
	color: black;
	background-color: white;
}

/* Sectioning and grouping content */
div, article, aside, footer, header, nav, section, main,
figure, figcaption, blockquote, address {
	display: block;
}

p {
	display: block;
	margin-top: 1em;
	margin-bottom: 1em;
}

blockquote {
	margin-top: 1em;
	margin-bottom: 1em;
	margin-left: 40px;
	margin-right: 40px;
}

pre {
	display: block;
	font-family: monospace;
	white-space: pre;
	margin-top: 1em;
	margin-bottom: 1em;
}

/* Headings */
h1, h2, h3, h4, h5, h6 {
	display: block;
	font-weight: bold;
}

h1 {
	font-size: 2em;
	margin-top: 0.67em;
	margin-bottom: 0.67em;
}

h2 {
	font-size: 1.5em;
	margin-top: 0.83em;
	margin-bottom: 0.83em;
}

h3 {
	font-size: 1.17em;
	margin-top: 1em;
	margin-bottom: 1em;
}

h4 {
	font-size: 1em;
	margin-top: 1.33em;
	margin-bottom: 1.33em;
}

h5 {
	font-size: 0.83em;
	margin-top: 1.67em;
	margin-bottom: 1.67em;
}

h6 {
	font-size: 0.67em;
	margin-top: 2.33em;
	margin-bottom: 2.33em;
}

/* Lists */
ul, ol {
	display: block;
	margin-top: 1em;
	margin-bottom: 1em;
	padding-left: 40px;
}

ul {
	list-style-type: disc;
}

ol {
	list-style-type: decimal;
}

li {
	display: list-item;
}

/* Inline elements */
a {
	color: #0000ee;
	text-decoration: underline;
	cursor: pointer;
}

b, strong {
	font-weight: bold;
}

i, em {
	font-style: italic;
}

u {
	text-decoration: underline;
}

s, strike, del {
	text-decoration: line-through;
}

code, kbd, samp {
	font-family: monospace;
}

small {
	font-size: 0.83em;
}

mark {
	background-color: yellow;
	color: black;
}

/* Tables */
table {
	display: table;
	border-collapse: separate;
}

tr {
	display: table-row;
}

td, th {
	display: table-cell;
	padding: 1px;
}

th {
	font-weight: bold;
	text-align: center;
}

/* Form elements */
input, button, select, textarea {
	display: inline-block;
}

button {
	text-align: center;
	cursor: pointer;
}

/* Hidden elements */
head, style, script, title, meta, link {
	display: none;
}

[hidden] {
	display: none;
}

hr {
	display: block;
	margin-top: 0.5em;
	margin-bottom: 0.5em;
	border-width: 1px;
	border-style: inset;
}
`

// DefaultStyleSheet parses the user agent stylesheet. Each call parses
// fresh so callers own the result outright.
func DefaultStyleSheet(log *zap.Logger) *StyleSheet {
	return NewParser(log).Parse(UserAgentStylesheet)
}
