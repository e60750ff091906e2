package email

// Email templates in HTML format

// BaseTemplate is the base layout for all emails
const BaseTemplate = `
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <style>
        body {
            margin: 0;
            padding: 0;
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, 'Helvetica Neue', Arial, sans-serif;
            background-color: #f4f5f7;
            color: #1f2430;
        }
        .container {
            max-width: 600px;
            margin: 0 auto;
            padding: 40px 20px;
        }
        .card {
            background: #ffffff;
            border-radius: 12px;
            padding: 32px;
            border: 1px solid #e3e6ec;
        }
        .logo {
            text-align: center;
            margin-bottom: 24px;
        }
        .logo h1 {
            font-size: 28px;
            color: #e8590c;
            margin: 0;
        }
        h2 {
            color: #1f2430;
            font-size: 24px;
            margin: 0 0 16px;
        }
        p {
            color: #5a6170;
            font-size: 16px;
            line-height: 1.6;
            margin: 0 0 16px;
        }
        .btn {
            display: inline-block;
            background: #e8590c;
            color: #ffffff !important;
            text-decoration: none;
            padding: 14px 28px;
            border-radius: 8px;
            font-weight: 600;
            font-size: 16px;
            margin: 16px 0;
        }
        .footer {
            text-align: center;
            margin-top: 32px;
            color: #9aa0ad;
            font-size: 12px;
        }
        .highlight {
            color: #e8590c;
            font-weight: 600;
        }
        .info-box {
            background: #f7f8fa;
            border-radius: 8px;
            padding: 16px;
            margin: 16px 0;
        }
    </style>
</head>
<body>
    <div class="container">
        <div class="card">
            <div class="logo">
                <h1>HoardSpot</h1>
            </div>
            {{.Content}}
        </div>
        <div class="footer">
            <p>© 2026 HoardSpot Media Pvt. Ltd. All rights reserved.</p>
            <p>You received this email because a booking was placed on hoardspot.in</p>
        </div>
    </div>
</body>
</html>
`

// BookingConfirmationTemplate - confirmation sent to the client who booked
const BookingConfirmationTemplate = `
<h2>Your booking request is in!</h2>
<p>Hi <span class="highlight">{{.ClientName}}</span>,</p>
<p>We have received your booking request for <strong>{{.SpaceTitle}}</strong>. Our media team will confirm availability and reach out within one working day.</p>
<div class="info-box">
    <p><strong>Booking reference:</strong> #{{.Code}}</p>
    <p><strong>Location:</strong> {{.SpaceAddress}}, {{.SpaceCity}}</p>
    <p><strong>Campaign dates:</strong> {{.StartDate}} to {{.EndDate}}</p>
    <p><strong>Total (excl. taxes):</strong> ₹{{.TotalPrice}}</p>
</div>
<p>Keep the reference number handy when you contact us about this booking.</p>
<a href="{{.BookingURL}}" class="btn">View your booking</a>
`

// BookingAlertTemplate - internal alert for the sales team
const BookingAlertTemplate = `
<h2>New booking request</h2>
<p>A booking request just came in from the website.</p>
<div class="info-box">
    <p><strong>Reference:</strong> #{{.Code}}</p>
    <p><strong>Space:</strong> {{.SpaceTitle}} — {{.SpaceCity}}</p>
    <p><strong>Client:</strong> {{.ClientName}} ({{.ClientEmail}}{{if .Company}}, {{.Company}}{{end}})</p>
    <p><strong>Dates:</strong> {{.StartDate}} to {{.EndDate}}</p>
    <p><strong>Quoted total:</strong> ₹{{.TotalPrice}}</p>
</div>
<p>Follow up with the client to confirm the slot.</p>
`

// EnquiryAckTemplate - acknowledgement for campaign enquiries
const EnquiryAckTemplate = `
<h2>Thanks for reaching out</h2>
<p>Hi <span class="highlight">{{.ContactName}}</span>,</p>
<p>We have received your campaign enquiry. A media planner will get back to you within one working day with options{{if .City}} for {{.City}}{{end}}.</p>
`
